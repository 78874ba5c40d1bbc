// Package nstree implements a concurrent, in-memory hierarchical folder
// namespace: a tree of named folders supporting List, Create, Remove and
// Move, safe for arbitrarily many callers to drive at once.
//
// The concurrency protocol lives one level down, in treelock: each folder
// owns a treelock.Monitor, and every operation here descends the tree
// root-first acquiring reader rights on ancestors and writer rights only
// on the single folder it operates on (see traverse.go). nstree
// itself never takes a lock directly; it only ever asks a Folder's
// Monitor to let it in.
package nstree

import (
	"github.com/nstree/nstree/internal/childset"
	"github.com/nstree/nstree/internal/pathutil"
	"github.com/nstree/nstree/nslog"
	"github.com/nstree/nstree/treelock"
)

// Folder is one node of the namespace. Its zero value is not usable;
// construct one with newFolder.
type Folder struct {
	name     string
	monitor  *treelock.Monitor
	children *childset.Set[*Folder]
}

func newFolder(name string) *Folder {
	return &Folder{
		name:     name,
		monitor:  treelock.New(),
		children: childset.New[*Folder](),
	}
}

// Fields implements nslog.DebugFields so a Folder logs as its name and
// child count rather than its pointer.
func (f *Folder) Fields() nslog.Fields {
	return nslog.Fields{"folder": f.name, "children": f.children.Size()}
}

// Tree is a namespace of folders rooted at "/".
//
// The root itself is addressed through a synthetic top-level folder with
// a single child named pathutil.Root, exactly as spec'd: it exists so
// that every real folder, including the root, is reached by a child
// lookup on its parent (see realRoot). The synthetic folder's own monitor
// is never locked, and descendAndLock in traverse.go still handles a path
// of "/" (writer on the root itself) as a case of its own. Callers never see the
// synthetic folder; it has no name of its own and is never returned from
// List or addressable by path.
type Tree struct {
	top *Folder
	log nslog.Log
}

// New builds an empty tree with one folder: the root. log may be nil, in
// which case nothing is logged.
func New(log nslog.Log) *Tree {
	if log == nil {
		log = nslog.NoLog{}
	}
	top := newFolder("")
	top.children.Put(pathutil.Root, newFolder(""))
	return &Tree{top: top, log: log}
}

func (t *Tree) realRoot() *Folder {
	root, _ := t.top.children.Get(pathutil.Root)
	return root
}

// Close tears the tree down. Folders carry no OS resources — there is
// nothing here for the garbage collector to need help with — but Close
// walks and detaches every folder anyway, mirroring the original tree's
// teardown discipline and giving tests a place to assert that a closed
// tree holds nothing reachable.
func (t *Tree) Close() error {
	var detach func(f *Folder)
	detach = func(f *Folder) {
		for _, name := range f.children.Names() {
			if child, ok := f.children.Get(name); ok {
				detach(child)
				f.children.Delete(name)
			}
		}
	}
	detach(t.realRoot())
	t.top.children.Delete(pathutil.Root)
	return nil
}
