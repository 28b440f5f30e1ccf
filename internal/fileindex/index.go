// Package fileindex implements the FileIndex of spec §3/§4.E: a set of
// Files plus three lookups (identity, logical name, path). Grounded on
// logseq_analyzer/analysis/index.py's FileIndex (add/get/remove dispatched
// by key type).
package fileindex

import (
	"os"
	"sync"

	"github.com/logseq-analyzer/lga/internal/types"
)

// Index is the single owner of all Files for one analysis run (spec §3
// "Lifecycle"). It is safe for concurrent use: every method takes its
// RWMutex, so the loader's workers can Insert in parallel.
type Index struct {
	mu        sync.RWMutex
	byID      map[types.FileID]*types.File
	byName    map[string][]*types.File
	byPath    map[string]*types.File
}

// New creates an empty Index.
func New() *Index {
	return &Index{
		byID:   make(map[types.FileID]*types.File),
		byName: make(map[string][]*types.File),
		byPath: make(map[string]*types.File),
	}
}

// Insert adds f to all three lookup maps. When two files normalize to the
// same logical name, both are stored; ByName returns both (spec §4.E).
func (idx *Index) Insert(f *types.File) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.byID[f.ID] = f
	idx.byName[f.LogicalName] = append(idx.byName[f.LogicalName], f)
	idx.byPath[f.Path] = f
}

// ByIdentity looks up a file by its FileID.
func (idx *Index) ByIdentity(id types.FileID) (*types.File, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	f, ok := idx.byID[id]
	return f, ok
}

// ByName returns every file whose logical name equals name.
func (idx *Index) ByName(name string) []*types.File {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return append([]*types.File(nil), idx.byName[name]...)
}

// ByPath looks up a file by its on-disk path (one-to-one).
func (idx *Index) ByPath(path string) (*types.File, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	f, ok := idx.byPath[path]
	return f, ok
}

// All iterates every file in undefined order, per spec §4.E.
func (idx *Index) All() []*types.File {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]*types.File, 0, len(idx.byID))
	for _, f := range idx.byID {
		out = append(out, f)
	}
	return out
}

// Len returns the number of indexed files.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.byID)
}

// RemoveDeletedFiles walks the path map and drops files whose path no
// longer exists on disk, per spec §4.E.
func (idx *Index) RemoveDeletedFiles() []string {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	var removed []string
	for path, f := range idx.byPath {
		if _, err := os.Stat(path); err == nil {
			continue
		}
		removed = append(removed, path)
		delete(idx.byPath, path)
		delete(idx.byID, f.ID)
		idx.removeFromName(f)
	}
	return removed
}

func (idx *Index) removeFromName(f *types.File) {
	list := idx.byName[f.LogicalName]
	for i, candidate := range list {
		if candidate == f {
			idx.byName[f.LogicalName] = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(idx.byName[f.LogicalName]) == 0 {
		delete(idx.byName, f.LogicalName)
	}
}
