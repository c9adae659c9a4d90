package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/opsdocs/clickup-playbook-mcp/internal/analyzer"
)

// AskTool handles the ask_playbook_question MCP tool.
type AskTool struct {
	source DocumentSource
}

// NewAskTool creates an AskTool.
func NewAskTool(source DocumentSource) *AskTool {
	return &AskTool{source: source}
}

// Definition returns the MCP tool definition for registration.
func (t *AskTool) Definition() mcp.Tool {
	return mcp.NewTool("ask_playbook_question",
		mcp.WithDescription(
			"Answer a free-text question about the playbooks. Questions about "+
				"estimates or duration return time information for every playbook; "+
				"questions about requirements return requirement lists; anything "+
				"else returns the closest-matching playbooks with their summaries.",
		),
		mcp.WithString("question",
			mcp.Required(),
			mcp.Description("The question, in plain language"),
		),
	)
}

// Handle processes the ask_playbook_question tool call.
func (t *AskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question := req.GetString("question", "")
	if question == "" {
		return mcp.NewToolResultError("'question' is required"), nil
	}

	docs := t.source.FetchDocuments(ctx)
	return mcp.NewToolResultText(analyzer.Answer(docs, question)), nil
}
