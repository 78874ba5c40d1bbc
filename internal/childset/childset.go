// Package childset is the name-to-handle map each folder uses to hold its
// children.
//
// It is the out-of-scope "hash-map data structure" of the specification:
// callers are expected to already hold appropriate monitor rights on the
// owning folder before calling any method here, so Set itself does no
// locking of its own beyond what the underlying concurrent map gives for
// free. It is built on xsync.MapOf purely for its ergonomic snapshot-style
// Range, not for concurrency the caller doesn't already have.
package childset

import (
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
)

// Child is the minimal shape a folder handle must expose to be stored in
// a Set and rendered in a snapshot.
type Child any

// Set maps a child name to its folder handle.
type Set[T Child] struct {
	m *xsync.MapOf[string, T]
}

// New returns an empty Set.
func New[T Child]() *Set[T] {
	return &Set[T]{m: xsync.NewMapOf[string, T]()}
}

// Get looks up name.
func (s *Set[T]) Get(name string) (T, bool) {
	return s.m.Load(name)
}

// Put inserts or overwrites name.
func (s *Set[T]) Put(name string, child T) {
	s.m.Store(name, child)
}

// Delete removes name, if present.
func (s *Set[T]) Delete(name string) {
	s.m.Delete(name)
}

// Size reports the number of children.
func (s *Set[T]) Size() int {
	return s.m.Size()
}

// Names returns a snapshot of the child names. Order is unspecified.
func (s *Set[T]) Names() []string {
	names := make([]string, 0, s.m.Size())
	s.m.Range(func(name string, _ T) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Snapshot renders the child names as a comma-separated string, empty when
// there are none. Order is unspecified, matching the map's own iteration
// order.
func (s *Set[T]) Snapshot() string {
	return strings.Join(s.Names(), ",")
}
