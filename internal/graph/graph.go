// Package graph implements the graph analyzer of spec §4.F: a four-pass
// aggregation over the FileIndex that builds the global reference table,
// backfills namespace children, classifies each file's node type, and
// computes dangling links. Grounded on
// logseq_analyzer/analysis/graph.py's LogseqGraph.process.
package graph

import (
	"strings"

	"github.com/logseq-analyzer/lga/internal/extract"
	"github.com/logseq-analyzer/lga/internal/fileindex"
	"github.com/logseq-analyzer/lga/internal/patterns"
	"github.com/logseq-analyzer/lga/internal/types"
)

// referenceCategories are the categories collected into the global
// reference table in pass 1, per spec §4.F.1.
var referenceCategories = []types.Category{
	types.CategoryAliases,
	types.CategoryDraws,
	types.CategoryPageReferences,
	types.CategoryTags,
	types.CategoryTaggedBacklinks,
	types.CategoryPropertiesPageBuiltin,
	types.CategoryPropertiesPageUser,
	types.CategoryPropertiesBlockBuiltin,
	types.CategoryPropertiesBlockUser,
}

// Report is the output of one graph analysis pass.
type Report struct {
	RefTable        *RefTable
	UniqueLinkedRefs   map[string]struct{}
	UniqueLinkedRefsNS map[string]struct{}
	UniqueAliases      map[string]struct{}
	DanglingLinks      []patterns.Counted
}

// Analyze runs the four passes of spec §4.F over idx, mutating each
// file's node-state fields and namespace children in place.
func Analyze(idx *fileindex.Index) *Report {
	refTable := newRefTable()
	uniqueRefs := map[string]struct{}{}
	uniqueRefsNS := map[string]struct{}{}
	uniqueAliases := map[string]struct{}{}

	files := idx.All()

	// Pass 1: collect references.
	for _, f := range files {
		for _, cat := range referenceCategories {
			for _, raw := range f.Features[cat] {
				name := strings.ToLower(raw)
				refTable.Add(name, f.LogicalName)
				uniqueRefs[name] = struct{}{}
				if cat == types.CategoryAliases {
					uniqueAliases[name] = struct{}{}
				}
			}
		}
		if f.Namespace.IsNamespace && f.Namespace.ParentFull != "" {
			parent := strings.ToLower(f.Namespace.ParentFull)
			refTable.Add(parent, f.LogicalName)
			uniqueRefsNS[parent] = struct{}{}
			uniqueRefsNS[strings.ToLower(f.Namespace.Root)] = struct{}{}
			uniqueRefsNS[strings.ToLower(f.LogicalName)] = struct{}{}
		}
	}

	// Pass 2: backfill namespace children.
	for _, f := range files {
		if !f.Namespace.IsNamespace {
			continue
		}
		for _, root := range idx.ByName(f.Namespace.Root) {
			if root != f {
				if root.Namespace.Children == nil {
					root.Namespace.Children = map[string]struct{}{}
				}
				root.Namespace.Children[f.LogicalName] = struct{}{}
			}
		}
		if f.Namespace.ParentFull != "" {
			for _, parent := range idx.ByName(f.Namespace.ParentFull) {
				if parent != f {
					if parent.Namespace.Children == nil {
						parent.Namespace.Children = map[string]struct{}{}
					}
					parent.Namespace.Children[f.LogicalName] = struct{}{}
				}
			}
		}
	}

	// Pass 3: node classification, consuming from a working copy of
	// uniqueRefs so each name only satisfies one file's backlink.
	working := make(map[string]struct{}, len(uniqueRefs))
	for k := range uniqueRefs {
		working[k] = struct{}{}
	}
	for _, f := range files {
		if f.Type != types.FileTypeJournal && f.Type != types.FileTypePage {
			continue
		}
		f.HasBacklinks = extract.HasBacklinksFired(f.Features)
		name := strings.ToLower(f.LogicalName)
		if _, ok := working[name]; ok {
			f.SetBacklinked()
			delete(working, name)
		} else if _, ok := uniqueRefsNS[name]; ok {
			f.SetBacklinkedNSOnly()
		}
		f.NodeType = types.ClassifyNodeType(f.Size.HasContent, f.HasBacklinks, f.Backlinked, f.BacklinkedNSOnly)
	}

	// Pass 4: dangling links.
	allNames := map[string]struct{}{}
	for _, f := range files {
		allNames[strings.ToLower(f.LogicalName)] = struct{}{}
	}
	dangling := map[string]struct{}{}
	for name := range uniqueRefs {
		dangling[name] = struct{}{}
	}
	for name := range uniqueRefsNS {
		dangling[name] = struct{}{}
	}
	for name := range allNames {
		delete(dangling, name)
	}
	for name := range uniqueAliases {
		delete(dangling, name)
	}
	for name := range extract.BuiltInProperties {
		delete(dangling, name)
	}

	var danglingList []patterns.Counted
	for name := range dangling {
		count := 0
		if e, ok := refTable.entries[name]; ok {
			count = e.Count
		}
		danglingList = append(danglingList, patterns.Counted{Name: name, Count: count})
	}
	patterns.SortByCountDesc(danglingList)

	return &Report{
		RefTable:           refTable,
		UniqueLinkedRefs:   uniqueRefs,
		UniqueLinkedRefsNS: uniqueRefsNS,
		UniqueAliases:      uniqueAliases,
		DanglingLinks:      danglingList,
	}
}
