package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/opsdocs/clickup-playbook-mcp/internal/analyzer"
	"github.com/opsdocs/clickup-playbook-mcp/internal/render"
)

// AnalyzeTool handles the analyze_playbook MCP tool.
type AnalyzeTool struct {
	source DocumentSource
}

// NewAnalyzeTool creates an AnalyzeTool.
func NewAnalyzeTool(source DocumentSource) *AnalyzeTool {
	return &AnalyzeTool{source: source}
}

// Definition returns the MCP tool definition for registration.
func (t *AnalyzeTool) Definition() mcp.Tool {
	return mcp.NewTool("analyze_playbook",
		mcp.WithDescription(
			"Analyze one playbook document and return its extracted fields "+
				"(description, estimation, requirements, tags, complexity, hours, "+
				"prerequisites, timing) without the raw content. "+
				"Extraction is heuristic — missing fields are reported as such, never as errors.",
		),
		mcp.WithString("doc_id",
			mcp.Required(),
			mcp.Description("Document id as shown by list_playbooks"),
		),
	)
}

// Handle processes the analyze_playbook tool call.
func (t *AnalyzeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docID := req.GetString("doc_id", "")
	if docID == "" {
		return mcp.NewToolResultError("'doc_id' is required"), nil
	}

	doc, ok := t.source.FetchDocument(ctx, docID)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("document not found: %s", docID)), nil
	}

	return mcp.NewToolResultText(render.Analysis(doc, analyzer.Analyze(doc))), nil
}
