package nstree

import (
	"github.com/nstree/nstree/internal/pathutil"
	"github.com/nstree/nstree/nslog"
)

// descendAndLock walks from the root to the folder named by path,
// acquiring reader rights on every folder it merely passes through and
// writer rights on the one it arrives at — the "operating point" the
// caller actually intends to read or mutate.
//
// It returns the folders it locked, root first, in the order they were
// locked (release walks them in reverse), and whether the walk ran off the edge of the tree (a missing
// child at some point). The walk stops at the first missing component:
// every folder visited up to and including that point already had its
// rights acquired and must still be released by the caller via release.
//
// Validity of path is not checked here. A malformed path is simply
// unlikely to match anything past the first component or two, and
// resolving that as NotFound rather than refusing to try is what lets the
// caller validate only after acquiring rights, per the tree's locking
// discipline: you can't know a path is bogus until you've safely looked.
func (t *Tree) descendAndLock(path string) (visited []*Folder, notFound bool) {
	root := t.realRoot()
	components := pathutil.Components(path)

	if len(components) == 0 {
		root.monitor.WriterEnter()
		t.log.Logf(nslog.TopicTrace, "descend %q: entered %q as writer", path, pathutil.Root)
		return []*Folder{root}, false
	}

	root.monitor.ReaderEnter()
	t.log.Logf(nslog.TopicTrace, "descend %q: entered %q as reader", path, pathutil.Root)
	visited = append(visited, root)
	current := root

	for i, name := range components {
		child, ok := current.children.Get(name)
		if !ok {
			return visited, true
		}
		role := "reader"
		if i == len(components)-1 {
			child.monitor.WriterEnter()
			role = "writer"
		} else {
			child.monitor.ReaderEnter()
		}
		t.log.Logf(nslog.TopicTrace, "descend %q: entered %q as %s", path, name, role)
		visited = append(visited, child)
		current = child
	}
	return visited, false
}

// release gives back the rights descendAndLock acquired, in reverse
// order. success reports whether descendAndLock actually reached and
// locked its target (as a writer) rather than running off the tree —
// it is not the operation's own result. A later validation failure
// (Invalid) still releases with success true: the walk itself succeeded,
// the path was just rejected afterward.
func release(visited []*Folder, success bool) {
	if len(visited) == 0 {
		return
	}
	last := len(visited) - 1
	if success {
		visited[last].monitor.WriterExit()
		for i := last - 1; i >= 0; i-- {
			visited[i].monitor.ReaderExit()
		}
		return
	}
	for i := last; i >= 0; i-- {
		visited[i].monitor.ReaderExit()
	}
}
