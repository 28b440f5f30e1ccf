package graph

import "github.com/logseq-analyzer/lga/internal/patterns"

// RefEntry is one LinkedReferenceTable row of spec §3: a referenced name,
// how many times it was referenced, and which files referenced it.
type RefEntry struct {
	Name    string
	Count   int
	FoundIn map[string]int // filename -> occurrence count, a multiset
}

// RefTable is the global LinkedReferenceTable of spec §3.
type RefTable struct {
	entries map[string]*RefEntry
}

func newRefTable() *RefTable {
	return &RefTable{entries: map[string]*RefEntry{}}
}

// Add increments name's count and records it as found in file.
func (t *RefTable) Add(name, file string) {
	e, ok := t.entries[name]
	if !ok {
		e = &RefEntry{Name: name, FoundIn: map[string]int{}}
		t.entries[name] = e
	}
	e.Count++
	e.FoundIn[file]++
}

// Has reports whether name was referenced at least once.
func (t *RefTable) Has(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// Sorted returns every entry sorted by count descending (spec §4.F
// "Tie-breaking").
func (t *RefTable) Sorted() []RefEntry {
	out := make([]patterns.Counted, 0, len(t.entries))
	byName := make(map[string]*RefEntry, len(t.entries))
	for name, e := range t.entries {
		out = append(out, patterns.Counted{Name: name, Count: e.Count})
		byName[name] = e
	}
	patterns.SortByCountDesc(out)

	result := make([]RefEntry, 0, len(out))
	for _, c := range out {
		result = append(result, *byName[c.Name])
	}
	return result
}

// Names returns the set of all referenced names.
func (t *RefTable) Names() map[string]struct{} {
	out := make(map[string]struct{}, len(t.entries))
	for name := range t.entries {
		out[name] = struct{}{}
	}
	return out
}
