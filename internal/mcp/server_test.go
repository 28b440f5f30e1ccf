package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logseq-analyzer/lga/internal/analysis"
	"github.com/logseq-analyzer/lga/internal/fileindex"
	"github.com/logseq-analyzer/lga/internal/graph"
	"github.com/logseq-analyzer/lga/internal/journals"
	"github.com/logseq-analyzer/lga/internal/namespaces"
	"github.com/logseq-analyzer/lga/internal/patterns"
	"github.com/logseq-analyzer/lga/internal/suggest"
	"github.com/logseq-analyzer/lga/internal/types"
)

func fixtureResult() *analysis.Result {
	idx := fileindex.New()
	f := &types.File{
		ID:          1,
		Path:        "/graph/pages/Alpha.md",
		LogicalName: "Alpha",
		Type:        types.FileTypePage,
		NodeType:    types.NodeTypeRoot,
		Features:    types.FeatureMap{},
	}
	idx.Insert(f)

	return &analysis.Result{
		Index: idx,
		Graph: &graph.Report{
			DanglingLinks: []patterns.Counted{{Name: "nowhere", Count: 3}, {Name: "elsewhere", Count: 1}},
		},
		Namespaces: &namespaces.Report{
			Tree: namespaces.Tree{"Project": namespaces.Tree{}},
			Conflicts: namespaces.Conflicts{
				NonNamespace: map[string][]string{"Project": {"Project"}},
				Dangling:     map[string][]string{},
				ParentDepth:  map[string]map[int][]string{},
			},
		},
		Journals: &journals.Timeline{
			Missing: []time.Time{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		},
		Suggestions: map[string][]suggest.Match{
			"nowhere": {{Name: "elsewhere", Similarity: 0.9}},
		},
	}
}

func callTool(t *testing.T, handler func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error), args any) (*mcp.CallToolResult, error) {
	t.Helper()
	var raw json.RawMessage
	if args != nil {
		b, err := json.Marshal(args)
		require.NoError(t, err)
		raw = b
	}
	return handler(context.Background(), &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: raw},
	})
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestHandleDanglingLinksReturnsAll(t *testing.T) {
	s := NewServer(fixtureResult())
	res, err := callTool(t, s.handleDanglingLinks, nil)
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, textOf(t, res), "nowhere")
	assert.Contains(t, textOf(t, res), "elsewhere")
}

func TestHandleDanglingLinksRespectsLimit(t *testing.T) {
	s := NewServer(fixtureResult())
	res, err := callTool(t, s.handleDanglingLinks, map[string]int{"limit": 1})
	require.NoError(t, err)
	assert.Contains(t, textOf(t, res), "nowhere")
	assert.NotContains(t, textOf(t, res), "elsewhere")
}

func TestHandleNodeTypeFound(t *testing.T) {
	s := NewServer(fixtureResult())
	res, err := callTool(t, s.handleNodeType, map[string]string{"name": "Alpha"})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, textOf(t, res), "root")
}

func TestHandleNodeTypeNotFound(t *testing.T) {
	s := NewServer(fixtureResult())
	res, err := callTool(t, s.handleNodeType, map[string]string{"name": "Missing"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleNamespaceTree(t *testing.T) {
	s := NewServer(fixtureResult())
	res, err := callTool(t, s.handleNamespaceTree, nil)
	require.NoError(t, err)
	assert.Contains(t, textOf(t, res), "Project")
}

func TestHandleNamespaceConflicts(t *testing.T) {
	s := NewServer(fixtureResult())
	res, err := callTool(t, s.handleNamespaceConflicts, nil)
	require.NoError(t, err)
	assert.Contains(t, textOf(t, res), "Project")
}

func TestHandleJournalGaps(t *testing.T) {
	s := NewServer(fixtureResult())
	res, err := callTool(t, s.handleJournalGaps, nil)
	require.NoError(t, err)
	assert.Contains(t, textOf(t, res), "2024-01-02")
}

func TestHandleSuggestLinks(t *testing.T) {
	s := NewServer(fixtureResult())
	res, err := callTool(t, s.handleSuggestLinks, map[string]string{"name": "nowhere"})
	require.NoError(t, err)
	assert.Contains(t, textOf(t, res), "elsewhere")
}
