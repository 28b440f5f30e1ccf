package fileindex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logseq-analyzer/lga/internal/types"
)

func TestInsertAndLookups(t *testing.T) {
	idx := New()
	f := &types.File{ID: 1, Path: "pages/foo.md", LogicalName: "foo"}
	idx.Insert(f)

	got, ok := idx.ByIdentity(1)
	require.True(t, ok)
	assert.Same(t, f, got)

	byName := idx.ByName("foo")
	require.Len(t, byName, 1)
	assert.Same(t, f, byName[0])

	byPath, ok := idx.ByPath("pages/foo.md")
	require.True(t, ok)
	assert.Same(t, f, byPath)

	assert.Equal(t, 1, idx.Len())
}

func TestByNameReturnsAllFilesSharingLogicalName(t *testing.T) {
	idx := New()
	a := &types.File{ID: 1, Path: "pages/foo.md", LogicalName: "foo"}
	b := &types.File{ID: 2, Path: "journals/foo.md", LogicalName: "foo"}
	idx.Insert(a)
	idx.Insert(b)

	got := idx.ByName("foo")
	assert.Len(t, got, 2)
}

func TestByNameReturnsCopyNotInternalSlice(t *testing.T) {
	idx := New()
	idx.Insert(&types.File{ID: 1, Path: "pages/foo.md", LogicalName: "foo"})

	got := idx.ByName("foo")
	got[0] = nil

	got2 := idx.ByName("foo")
	assert.NotNil(t, got2[0])
}

func TestRemoveDeletedFilesDropsMissingPaths(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.md")
	require.NoError(t, os.WriteFile(present, []byte("x"), 0o644))
	missing := filepath.Join(dir, "missing.md")

	idx := New()
	idx.Insert(&types.File{ID: 1, Path: present, LogicalName: "present"})
	idx.Insert(&types.File{ID: 2, Path: missing, LogicalName: "missing"})

	removed := idx.RemoveDeletedFiles()
	assert.Equal(t, []string{missing}, removed)
	assert.Equal(t, 1, idx.Len())

	_, ok := idx.ByPath(missing)
	assert.False(t, ok)
	_, ok = idx.ByIdentity(2)
	assert.False(t, ok)
	assert.Empty(t, idx.ByName("missing"))
}

func TestAllReturnsEveryFile(t *testing.T) {
	idx := New()
	idx.Insert(&types.File{ID: 1, Path: "a.md", LogicalName: "a"})
	idx.Insert(&types.File{ID: 2, Path: "b.md", LogicalName: "b"})
	assert.Len(t, idx.All(), 2)
}
