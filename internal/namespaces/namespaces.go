// Package namespaces implements the namespace analyzer of spec §4.G:
// three conflict classes plus the namespace tree and
// "{{namespace [[X]]}}" query analysis. Grounded on
// logseq_analyzer/analysis/namespaces.py's LogseqNamespaces.
package namespaces

import (
	"sort"
	"strings"

	"github.com/logseq-analyzer/lga/internal/fileindex"
	"github.com/logseq-analyzer/lga/internal/patterns"
	"github.com/logseq-analyzer/lga/internal/types"
)

// Tree is a recursive string -> subtree structure, spec §3
// NamespaceStructure.
type Tree map[string]Tree

// Conflicts holds the three conflict classes of spec §4.G.
type Conflicts struct {
	NonNamespace map[string][]string // part -> full names
	Dangling     map[string][]string // part -> full names
	ParentDepth  map[string]map[int][]string // part -> level -> full names
}

// NamespaceQuery is one validated "{{namespace [[X]]}}" occurrence.
type NamespaceQuery struct {
	FoundIn     string
	Namespace   string
	Size        int
	ExternalURL string
}

// Report is the output of one namespace analysis pass.
type Report struct {
	Tree        Tree
	Conflicts   Conflicts
	UniqueParts map[string]struct{}
	PartsByLevel map[int]map[string]struct{}
	Queries     []NamespaceQuery
}

// pageRefInQuery extracts the inner page-reference name from a
// "{{namespace [[X]]}}" query body.
var pageRefInQuery = patterns.MustCompile(`\[\[([^\[\]]+)\]\]`)

// Analyze runs the namespace analyzer over idx and danglingNames (the
// dangling-link set computed by the graph analyzer, spec §4.F.4).
func Analyze(idx *fileindex.Index, danglingNames map[string]struct{}) *Report {
	files := idx.All()

	tree := Tree{}
	uniqueParts := map[string]struct{}{}
	partsByLevel := map[int]map[string]struct{}{}
	nonNamespaceNames := map[string]*types.File{}
	partDepths := map[string]map[int][]string{}

	for _, f := range files {
		if !f.Namespace.IsNamespace {
			nonNamespaceNames[strings.ToLower(f.LogicalName)] = f
			continue
		}
		node := tree
		for _, part := range f.Namespace.Order {
			uniqueParts[part] = struct{}{}
			if node[part] == nil {
				node[part] = Tree{}
			}
			node = node[part]
		}
		for part, level := range f.Namespace.Parts {
			if partsByLevel[level] == nil {
				partsByLevel[level] = map[string]struct{}{}
			}
			partsByLevel[level][part] = struct{}{}
			if partDepths[part] == nil {
				partDepths[part] = map[int][]string{}
			}
			partDepths[part][level] = append(partDepths[part][level], f.LogicalName)
		}
	}

	conflicts := Conflicts{
		NonNamespace: map[string][]string{},
		Dangling:     map[string][]string{},
		ParentDepth:  map[string]map[int][]string{},
	}

	for part := range uniqueParts {
		if _, ok := nonNamespaceNames[strings.ToLower(part)]; ok {
			for _, byLevel := range partDepths[part] {
				conflicts.NonNamespace[part] = append(conflicts.NonNamespace[part], byLevel...)
			}
		}
		if _, ok := danglingNames[strings.ToLower(part)]; ok {
			for _, byLevel := range partDepths[part] {
				conflicts.Dangling[part] = append(conflicts.Dangling[part], byLevel...)
			}
		}
		if len(partDepths[part]) >= 2 {
			conflicts.ParentDepth[part] = partDepths[part]
		}
	}

	queries := analyzeQueries(files)

	return &Report{
		Tree:         tree,
		Conflicts:    conflicts,
		UniqueParts:  uniqueParts,
		PartsByLevel: partsByLevel,
		Queries:      queries,
	}
}

func analyzeQueries(files []*types.File) []NamespaceQuery {
	var queries []NamespaceQuery
	for _, f := range files {
		for _, q := range f.Features[types.CategoryNamespaceQueries] {
			refs := pageRefInQuery.FindAllStringSubmatch(q, -1)
			if len(refs) != 1 {
				// QueryShapeWarning per spec §7: zero or multiple page
				// references; skip this query.
				continue
			}
			ns := refs[0][1]
			queries = append(queries, NamespaceQuery{
				FoundIn:   f.LogicalName,
				Namespace: ns,
				Size:      len(ns),
			})
		}
	}
	sort.SliceStable(queries, func(i, j int) bool {
		return queries[i].Size > queries[j].Size
	})
	return queries
}
