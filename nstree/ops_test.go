package nstree

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedTokens(s string) []string {
	if s == "" {
		return nil
	}
	tokens := strings.Split(s, ",")
	sort.Strings(tokens)
	return tokens
}

// S1: create + list, happy path.
func TestCreateAndList(t *testing.T) {
	tree := New(nil)
	require.Equal(t, OK, tree.Create("/a/"))
	require.Equal(t, OK, tree.Create("/a/b/"))
	require.Equal(t, OK, tree.Create("/a/c/"))

	listing, code := tree.List("/a/")
	require.Equal(t, OK, code)
	assert.Equal(t, []string{"b", "c"}, sortedTokens(listing))
}

// S2: create under a folder that doesn't exist.
func TestCreateUnderMissingParent(t *testing.T) {
	tree := New(nil)
	assert.Equal(t, NotFound, tree.Create("/x/y/"))
}

// S3: remove a non-empty folder.
func TestRemoveNonEmpty(t *testing.T) {
	tree := New(nil)
	require.Equal(t, OK, tree.Create("/a/"))
	require.Equal(t, OK, tree.Create("/a/b/"))
	assert.Equal(t, NotEmpty, tree.Remove("/a/"))
}

// S4: the root can never be removed.
func TestRemoveRoot(t *testing.T) {
	tree := New(nil)
	assert.Equal(t, Busy, tree.Remove("/"))
}

// S5: moving a folder into its own subtree.
func TestMoveIntoOwnSubtree(t *testing.T) {
	tree := New(nil)
	require.Equal(t, OK, tree.Create("/a/"))
	require.Equal(t, OK, tree.Create("/a/b/"))
	assert.Equal(t, SourceAncestorOfTarget, tree.Move("/a/", "/a/b/c/"))
}

// source == target names a folder moving onto itself: the name is
// already taken by the very folder being moved, so this is Exists, not
// SourceAncestorOfTarget (spec §4.3.4; Tree.c's tree_move hits the
// target-exists hmap_get before is_substring).
func TestMoveOntoSelf(t *testing.T) {
	tree := New(nil)
	require.Equal(t, OK, tree.Create("/a/"))
	assert.Equal(t, Exists, tree.Move("/a/", "/a/"))
}

// A target inside source's own subtree whose parent doesn't exist is
// NotFound, not SourceAncestorOfTarget: the target-parent walk fails
// before the ancestor check ever runs.
func TestMoveTargetParentMissingUnderOwnSubtree(t *testing.T) {
	tree := New(nil)
	require.Equal(t, OK, tree.Create("/a/"))
	require.Equal(t, OK, tree.Create("/a/b/"))
	assert.Equal(t, NotFound, tree.Move("/a/", "/a/b/c/d/"))
}

func TestCreateAlreadyExists(t *testing.T) {
	tree := New(nil)
	require.Equal(t, OK, tree.Create("/a/"))
	assert.Equal(t, Exists, tree.Create("/a/"))
	assert.Equal(t, Exists, tree.Create("/"))
}

func TestCreateInvalidPath(t *testing.T) {
	tree := New(nil)
	assert.Equal(t, Invalid, tree.Create("/A/"))
	assert.Equal(t, Invalid, tree.Create("/a"))
}

func TestListMissing(t *testing.T) {
	tree := New(nil)
	_, code := tree.List("/missing/")
	assert.Equal(t, NotFound, code)
}

func TestListRootEmpty(t *testing.T) {
	tree := New(nil)
	listing, code := tree.List("/")
	require.Equal(t, OK, code)
	assert.Equal(t, "", listing)
}

func TestRemoveMissing(t *testing.T) {
	tree := New(nil)
	assert.Equal(t, NotFound, tree.Remove("/a/"))
}

func TestRemoveLeaf(t *testing.T) {
	tree := New(nil)
	require.Equal(t, OK, tree.Create("/a/"))
	require.Equal(t, OK, tree.Create("/a/b/"))
	require.Equal(t, OK, tree.Remove("/a/b/"))

	listing, code := tree.List("/a/")
	require.Equal(t, OK, code)
	assert.Equal(t, "", listing)
}

func TestMoveHappyPath(t *testing.T) {
	tree := New(nil)
	require.Equal(t, OK, tree.Create("/a/"))
	require.Equal(t, OK, tree.Create("/b/"))
	require.Equal(t, OK, tree.Create("/a/c/"))

	require.Equal(t, OK, tree.Move("/a/c/", "/b/c/"))

	listing, code := tree.List("/a/")
	require.Equal(t, OK, code)
	assert.Equal(t, "", listing)

	listing, code = tree.List("/b/")
	require.Equal(t, OK, code)
	assert.Equal(t, []string{"c"}, sortedTokens(listing))
}

func TestMoveRenameInPlace(t *testing.T) {
	tree := New(nil)
	require.Equal(t, OK, tree.Create("/a/"))
	require.Equal(t, OK, tree.Move("/a/", "/z/"))

	_, code := tree.List("/a/")
	assert.Equal(t, NotFound, code)

	listing, code := tree.List("/z/")
	require.Equal(t, OK, code)
	assert.Equal(t, "", listing)
}

func TestMoveSourceNotFound(t *testing.T) {
	tree := New(nil)
	require.Equal(t, OK, tree.Create("/a/"))
	assert.Equal(t, NotFound, tree.Move("/missing/", "/a/z/"))
}

func TestMoveTargetExists(t *testing.T) {
	tree := New(nil)
	require.Equal(t, OK, tree.Create("/a/"))
	require.Equal(t, OK, tree.Create("/b/"))
	assert.Equal(t, Exists, tree.Move("/a/", "/b/"))
}

func TestMoveSourceIsRoot(t *testing.T) {
	tree := New(nil)
	assert.Equal(t, Busy, tree.Move("/", "/a/"))
}

func TestMoveTargetIsRoot(t *testing.T) {
	tree := New(nil)
	require.Equal(t, OK, tree.Create("/a/"))
	assert.Equal(t, Exists, tree.Move("/a/", "/"))
}

// A failing operation must leave the tree exactly as it found it.
func TestFailedOperationLeavesTreeUnchanged(t *testing.T) {
	tree := New(nil)
	require.Equal(t, OK, tree.Create("/a/"))
	require.Equal(t, OK, tree.Create("/a/b/"))

	before, code := tree.List("/a/")
	require.Equal(t, OK, code)

	assert.Equal(t, NotFound, tree.Create("/missing/x/"))
	assert.Equal(t, NotEmpty, tree.Remove("/a/"))
	assert.Equal(t, SourceAncestorOfTarget, tree.Move("/a/", "/a/b/c/"))

	after, code := tree.List("/a/")
	require.Equal(t, OK, code)
	assert.Equal(t, sortedTokens(before), sortedTokens(after))
}

func TestCloseDetachesEverything(t *testing.T) {
	tree := New(nil)
	require.Equal(t, OK, tree.Create("/a/"))
	require.Equal(t, OK, tree.Create("/a/b/"))
	require.NoError(t, tree.Close())
	assert.Equal(t, 0, tree.top.children.Size())
}
