package namespaces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logseq-analyzer/lga/internal/fileindex"
	"github.com/logseq-analyzer/lga/internal/types"
)

func nsFile(id types.FileID, name string) *types.File {
	f := &types.File{
		ID:          id,
		Path:        "/graph/pages/" + name + ".md",
		LogicalName: name,
		Type:        types.FileTypePage,
		Features:    types.FeatureMap{},
	}
	if order := splitName(name); len(order) > 1 {
		parts := make(map[string]int, len(order))
		for i, p := range order {
			parts[p] = i + 1
		}
		f.Namespace = types.NamespaceInfo{
			IsNamespace: true,
			Order:       order,
			Parts:       parts,
			Root:        order[0],
			Stem:        order[len(order)-1],
			Children:    map[string]struct{}{},
		}
	}
	return f
}

func splitName(name string) []string {
	var out []string
	start := 0
	for i := 0; i < len(name); i++ {
		if name[i] == '/' {
			out = append(out, name[start:i])
			start = i + 1
		}
	}
	out = append(out, name[start:])
	return out
}

func TestAnalyzeBuildsTree(t *testing.T) {
	idx := fileindex.New()
	idx.Insert(nsFile(1, "Project/Task"))

	report := Analyze(idx, map[string]struct{}{})
	require.Contains(t, report.Tree, "Project")
	assert.Contains(t, report.Tree["Project"], "Task")
}

func TestAnalyzeUniquePartsAndLevels(t *testing.T) {
	idx := fileindex.New()
	idx.Insert(nsFile(1, "Project/Task"))

	report := Analyze(idx, map[string]struct{}{})
	assert.Contains(t, report.UniqueParts, "Project")
	assert.Contains(t, report.UniqueParts, "Task")
	assert.Contains(t, report.PartsByLevel[1], "Project")
	assert.Contains(t, report.PartsByLevel[2], "Task")
}

func TestAnalyzeNonNamespaceConflict(t *testing.T) {
	idx := fileindex.New()
	idx.Insert(nsFile(1, "Project"))
	idx.Insert(nsFile(2, "Project/Task"))

	report := Analyze(idx, map[string]struct{}{})
	assert.Contains(t, report.Conflicts.NonNamespace, "Project")
}

func TestAnalyzeDanglingConflict(t *testing.T) {
	idx := fileindex.New()
	idx.Insert(nsFile(1, "Project/Task"))
	dangling := map[string]struct{}{"project": {}}

	report := Analyze(idx, dangling)
	assert.Contains(t, report.Conflicts.Dangling, "Project")
}

func TestAnalyzeParentDepthConflict(t *testing.T) {
	idx := fileindex.New()
	idx.Insert(nsFile(1, "Project/Task"))
	idx.Insert(nsFile(2, "Area/Project"))

	report := Analyze(idx, map[string]struct{}{})
	assert.Contains(t, report.Conflicts.ParentDepth, "Project")
	assert.Len(t, report.Conflicts.ParentDepth["Project"], 2)
}

func TestAnalyzeQueriesSortedBySizeDesc(t *testing.T) {
	idx := fileindex.New()
	f := nsFile(1, "Solo")
	f.Features.Add(types.CategoryNamespaceQueries, "{{namespace [[Projects]]}}")
	f.Features.Add(types.CategoryNamespaceQueries, "{{namespace [[A]]}}")
	idx.Insert(f)

	report := Analyze(idx, map[string]struct{}{})
	require.Len(t, report.Queries, 2)
	assert.Equal(t, "Projects", report.Queries[0].Namespace)
	assert.Equal(t, "A", report.Queries[1].Namespace)
}

func TestAnalyzeQuerySkippedOnAmbiguousShape(t *testing.T) {
	idx := fileindex.New()
	f := nsFile(1, "Solo")
	f.Features.Add(types.CategoryNamespaceQueries, "{{namespace [[A]] [[B]]}}")
	idx.Insert(f)

	report := Analyze(idx, map[string]struct{}{})
	assert.Empty(t, report.Queries)
}
