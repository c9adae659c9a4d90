package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/opsdocs/clickup-playbook-mcp/internal/analyzer"
	"github.com/opsdocs/clickup-playbook-mcp/internal/render"
)

// GetTool handles the get_playbook MCP tool.
type GetTool struct {
	source DocumentSource
}

// NewGetTool creates a GetTool.
func NewGetTool(source DocumentSource) *GetTool {
	return &GetTool{source: source}
}

// Definition returns the MCP tool definition for registration.
func (t *GetTool) Definition() mcp.Tool {
	return mcp.NewTool("get_playbook",
		mcp.WithDescription(
			"Read one playbook document in full: every extracted field "+
				"(description, estimation, requirements, tags, complexity, hours, "+
				"prerequisites, timing) followed by the raw document content.",
		),
		mcp.WithString("doc_id",
			mcp.Required(),
			mcp.Description("Document id as shown by list_playbooks"),
		),
	)
}

// Handle processes the get_playbook tool call.
func (t *GetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docID := req.GetString("doc_id", "")
	if docID == "" {
		return mcp.NewToolResultError("'doc_id' is required"), nil
	}

	doc, ok := t.source.FetchDocument(ctx, docID)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("document not found: %s", docID)), nil
	}

	return mcp.NewToolResultText(render.Document(doc, analyzer.Analyze(doc))), nil
}
