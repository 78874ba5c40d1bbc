// Package pathutil validates and decomposes the canonical namespace paths
// used throughout nstree.
//
// A canonical path is either "/" (the root) or a sequence of one or more
// "/component" groups ending in a trailing slash, e.g. "/a/b/c/". Each
// component is 1-MaxFolderNameLength characters drawn from a restricted
// alphabet. Paths are never normalized on the caller's behalf: "." and
// ".." components, doubled slashes, and a missing leading or trailing
// slash are all rejected as invalid rather than silently cleaned up.
package pathutil

import "strings"

// MaxFolderNameLength is the longest a single path component may be.
const MaxFolderNameLength = 255

// Root is the canonical path of the tree root.
const Root = "/"

func isValidComponentByte(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// ValidComponent reports whether name is a legal single path component.
func ValidComponent(name string) bool {
	if len(name) == 0 || len(name) > MaxFolderNameLength {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isValidComponentByte(name[i]) {
			return false
		}
	}
	return true
}

// Valid reports whether p is a canonical path.
func Valid(p string) bool {
	if p == Root {
		return true
	}
	if len(p) < 2 || p[0] != '/' || p[len(p)-1] != '/' {
		return false
	}
	for _, component := range strings.Split(p[1:len(p)-1], "/") {
		if !ValidComponent(component) {
			return false
		}
	}
	return true
}

// Components splits p into its ordered components. It is deliberately
// lenient about malformed input — a missing leading or trailing slash is
// tolerated, and a doubled interior slash yields an empty component rather
// than an error — because traversal runs Components before a path has been
// checked by Valid. An empty component simply fails every child lookup, so
// a malformed path still resolves the way the algorithm expects: NotFound
// if it doesn't match the tree, Invalid from the Valid check afterward if
// it does.
func Components(p string) []string {
	if p == Root {
		return nil
	}
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// Join reassembles components into a canonical path.
func Join(components []string) string {
	if len(components) == 0 {
		return Root
	}
	return "/" + strings.Join(components, "/") + "/"
}

// Split divides a non-root canonical path into its parent path and leaf
// component name, e.g. Split("/a/b/") == ("/a/", "b"). The caller must
// ensure p != Root.
func Split(p string) (parent, leaf string) {
	components := Components(p)
	if len(components) == 0 {
		return Root, ""
	}
	leaf = components[len(components)-1]
	parent = Join(components[:len(components)-1])
	return parent, leaf
}

// LCA returns the canonical path of the latest (deepest) common ancestor
// of two canonical paths, aligning the comparison on component boundaries
// so that e.g. "/ab/" and "/abc/" share only the root.
func LCA(p1, p2 string) string {
	c1, c2 := Components(p1), Components(p2)
	var common []string
	for i := 0; i < len(c1) && i < len(c2); i++ {
		if c1[i] != c2[i] {
			break
		}
		common = append(common, c1[i])
	}
	return Join(common)
}

// IsAncestor reports whether ancestor is a strict or equal prefix of p on
// component boundaries — i.e. whether p lies at or under ancestor in the
// tree. Both paths must be canonical.
func IsAncestor(ancestor, p string) bool {
	ca, cp := Components(ancestor), Components(p)
	if len(ca) > len(cp) {
		return false
	}
	for i, c := range ca {
		if cp[i] != c {
			return false
		}
	}
	return true
}
