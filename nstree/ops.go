package nstree

import (
	"github.com/nstree/nstree/internal/pathutil"
	"github.com/nstree/nstree/nslog"
)

// walkFrom pointer-chases from start through components without taking any
// locks of its own. It is only safe to call while the caller already holds
// rights on every folder it passes through: reader or writer rights on
// each folder down to a writer-held one, whose writer lock then covers
// everything beneath it — Move relies on this to walk from the root to a
// source or target's parent once descendAndLock has taken readers down to
// the latest common ancestor and the writer on it, exactly as the
// original tree walks the rest of the path once it holds the one lock
// that matters.
func walkFrom(start *Folder, components []string) (*Folder, bool) {
	current := start
	for _, name := range components {
		child, ok := current.children.Get(name)
		if !ok {
			return nil, false
		}
		current = child
	}
	return current, true
}

// List returns a comma-separated snapshot of path's children (or "" if it
// has none) and OK, or an error Code and "".
func (t *Tree) List(path string) (string, Code) {
	cookie := t.log.Call("List", nslog.Fields{"path": path})
	result, code := t.list(path)
	t.log.Return("List", cookie, nslog.Fields{"result": result, "code": code.String()})
	return result, code
}

func (t *Tree) list(path string) (string, Code) {
	visited, notFound := t.descendAndLock(path)
	if notFound {
		release(visited, false)
		t.log.Logf(nslog.TopicVerdict, "list %q: not found", path)
		return "", NotFound
	}
	if !pathutil.Valid(path) {
		release(visited, true)
		t.log.Logf(nslog.TopicVerdict, "list %q: invalid path", path)
		return "", Invalid
	}
	target := visited[len(visited)-1]
	snapshot := target.children.Snapshot()
	release(visited, true)
	return snapshot, OK
}

// Create adds an empty folder at path. path's parent must already exist;
// path itself must not.
func (t *Tree) Create(path string) Code {
	cookie := t.log.Call("Create", nslog.Fields{"path": path})
	code := t.create(path)
	t.log.Return("Create", cookie, nslog.Fields{"code": code.String()})
	return code
}

func (t *Tree) create(path string) Code {
	if path == pathutil.Root {
		return Exists
	}
	parent, leaf := pathutil.Split(path)
	visited, notFound := t.descendAndLock(parent)
	if notFound {
		release(visited, false)
		t.log.Logf(nslog.TopicVerdict, "create %q: parent not found", path)
		return NotFound
	}
	if !pathutil.Valid(path) {
		release(visited, true)
		t.log.Logf(nslog.TopicVerdict, "create %q: invalid path", path)
		return Invalid
	}

	parentFolder := visited[len(visited)-1]
	if _, exists := parentFolder.children.Get(leaf); exists {
		release(visited, true)
		return Exists
	}
	parentFolder.children.Put(leaf, newFolder(leaf))
	release(visited, true)
	return OK
}

// Remove deletes the folder at path, which must exist and have no
// children. The root may never be removed.
func (t *Tree) Remove(path string) Code {
	cookie := t.log.Call("Remove", nslog.Fields{"path": path})
	code := t.remove(path)
	t.log.Return("Remove", cookie, nslog.Fields{"code": code.String()})
	return code
}

func (t *Tree) remove(path string) Code {
	if path == pathutil.Root {
		return Busy
	}
	parent, leaf := pathutil.Split(path)
	visited, notFound := t.descendAndLock(parent)
	if notFound {
		release(visited, false)
		t.log.Logf(nslog.TopicVerdict, "remove %q: parent not found", path)
		return NotFound
	}
	if !pathutil.Valid(path) {
		release(visited, true)
		t.log.Logf(nslog.TopicVerdict, "remove %q: invalid path", path)
		return Invalid
	}

	parentFolder := visited[len(visited)-1]
	target, exists := parentFolder.children.Get(leaf)
	if !exists {
		release(visited, true)
		return NotFound
	}
	if target.children.Size() > 0 {
		release(visited, true)
		return NotEmpty
	}
	parentFolder.children.Delete(leaf)
	release(visited, true)
	return OK
}

// Move relocates the folder at source to target, which names its new
// path (including its new leaf name). The operating point is the latest
// common ancestor of source and target: holding it as a writer is enough
// to also protect everything strictly beneath it, since any other
// operation reaching that deep must first pass through this folder as at
// least a reader, which the writer lock excludes. The rest of the walk
// down to source and target's parents runs unlocked off that guarantee,
// the same shortcut the tree it's ported from takes.
func (t *Tree) Move(source, target string) Code {
	cookie := t.log.Call("Move", nslog.Fields{"source": source, "target": target})
	code := t.move(source, target)
	t.log.Return("Move", cookie, nslog.Fields{"code": code.String()})
	return code
}

func (t *Tree) move(source, target string) Code {
	if source == pathutil.Root {
		return Busy
	}
	if target == pathutil.Root {
		return Exists
	}

	lcaPath := pathutil.LCA(source, target)
	visited, notFound := t.descendAndLock(lcaPath)
	if notFound {
		release(visited, false)
		t.log.Logf(nslog.TopicVerdict, "move %q -> %q: ancestor not found", source, target)
		return NotFound
	}

	if !pathutil.Valid(source) || !pathutil.Valid(target) {
		release(visited, true)
		t.log.Logf(nslog.TopicVerdict, "move %q -> %q: invalid path", source, target)
		return Invalid
	}

	root := t.realRoot()

	sourceComponents := pathutil.Components(source)
	sourceParent, ok := walkFrom(root, sourceComponents[:len(sourceComponents)-1])
	if !ok {
		release(visited, true)
		return NotFound
	}
	sourceLeaf := sourceComponents[len(sourceComponents)-1]
	sourceFolder, ok := sourceParent.children.Get(sourceLeaf)
	if !ok {
		release(visited, true)
		return NotFound
	}

	targetComponents := pathutil.Components(target)
	targetParent, ok := walkFrom(root, targetComponents[:len(targetComponents)-1])
	if !ok {
		release(visited, true)
		return NotFound
	}
	targetLeaf := targetComponents[len(targetComponents)-1]
	if _, exists := targetParent.children.Get(targetLeaf); exists {
		release(visited, true)
		return Exists
	}

	// Checked last, and strictly: source == target already returned Exists
	// above, so reaching here with source a (proper) ancestor of target
	// means target nests inside the folder being moved.
	if pathutil.IsAncestor(source, target) {
		release(visited, true)
		return SourceAncestorOfTarget
	}

	sourceParent.children.Delete(sourceLeaf)
	sourceFolder.name = targetLeaf
	targetParent.children.Put(targetLeaf, sourceFolder)

	release(visited, true)
	return OK
}
