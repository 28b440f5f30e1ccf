// Package mcp exposes read-only graph queries over the Model Context
// Protocol, grounded on the teacher's internal/mcp server
// (mcp.NewServer/AddTool/StdioTransport idiom, standardbeagle-lci).
// Unlike the teacher's code-search tool surface, every tool here is a thin
// read accessor over a previously computed analysis.Result — no indexing,
// no mutation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/logseq-analyzer/lga/internal/analysis"
)

// Server wraps one completed analysis.Result behind an MCP tool surface.
type Server struct {
	server *mcp.Server
	result *analysis.Result
}

// NewServer builds the MCP server and registers its tools against result.
func NewServer(result *analysis.Result) *Server {
	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "lga-mcp-server",
			Version: "0.1.0",
		}, nil),
		result: result,
	}
	s.registerTools()
	return s
}

// Start runs the server over stdio until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	log.Printf("mcp: starting lga server over stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "dangling_links",
		Description: "List every dangling link (referenced but no page/journal exists), sorted by reference count descending.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"limit": {Type: "integer", Description: "Maximum entries to return (0 = all)"},
			},
		},
	}, s.handleDanglingLinks)

	s.server.AddTool(&mcp.Tool{
		Name:        "node_type",
		Description: "Look up a page or journal's classified node type (root/leaf/branch/orphan_*) by its logical name.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"name": {Type: "string", Description: "Logical page or journal name"},
			},
			Required: []string{"name"},
		},
	}, s.handleNodeType)

	s.server.AddTool(&mcp.Tool{
		Name:        "namespace_tree",
		Description: "Return the full namespace hierarchy tree.",
		InputSchema: &jsonschema.Schema{Type: "object"},
	}, s.handleNamespaceTree)

	s.server.AddTool(&mcp.Tool{
		Name:        "namespace_conflicts",
		Description: "List namespace parts involved in a non-namespace, dangling, or parent-depth conflict.",
		InputSchema: &jsonschema.Schema{Type: "object"},
	}, s.handleNamespaceConflicts)

	s.server.AddTool(&mcp.Tool{
		Name:        "journal_gaps",
		Description: "List missing journal dates inside the reconstructed timeline (no file, no dangling-link candidate).",
		InputSchema: &jsonschema.Schema{Type: "object"},
	}, s.handleJournalGaps)

	s.server.AddTool(&mcp.Tool{
		Name:        "suggest_links",
		Description: "Suggest likely typo corrections for a dangling link name among names that do resolve.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"name": {Type: "string", Description: "Dangling link name to find corrections for"},
			},
			Required: []string{"name"},
		},
	}, s.handleSuggestLinks)
}

func (s *Server) handleDanglingLinks(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Limit int `json:"limit"`
	}
	if len(req.Params.Arguments) > 0 {
		if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
			return errorResult(fmt.Errorf("invalid parameters: %w", err))
		}
	}

	links := s.result.Graph.DanglingLinks
	if params.Limit > 0 && params.Limit < len(links) {
		links = links[:params.Limit]
	}
	return jsonResult(links)
}

func (s *Server) handleNodeType(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult(fmt.Errorf("invalid parameters: %w", err))
	}

	files := s.result.Index.ByName(params.Name)
	if len(files) == 0 {
		return errorResult(fmt.Errorf("no file with logical name %q", params.Name))
	}

	out := make([]map[string]string, 0, len(files))
	for _, f := range files {
		out = append(out, map[string]string{
			"path":      f.Path,
			"node_type": f.NodeType.String(),
		})
	}
	return jsonResult(out)
}

func (s *Server) handleNamespaceTree(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.result.Namespaces.Tree)
}

func (s *Server) handleNamespaceConflicts(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.result.Namespaces.Conflicts)
}

func (s *Server) handleJournalGaps(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.result.Journals == nil {
		return jsonResult([]struct{}{})
	}
	return jsonResult(s.result.Journals.Missing)
}

func (s *Server) handleSuggestLinks(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult(fmt.Errorf("invalid parameters: %w", err))
	}
	return jsonResult(s.result.Suggestions[params.Name])
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}

func errorResult(err error) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}, nil
}
