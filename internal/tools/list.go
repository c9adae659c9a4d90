package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListTool handles the list_playbooks MCP tool.
type ListTool struct {
	source DocumentSource
}

// NewListTool creates a ListTool.
func NewListTool(source DocumentSource) *ListTool {
	return &ListTool{source: source}
}

// Definition returns the MCP tool definition for registration.
func (t *ListTool) Definition() mcp.Tool {
	return mcp.NewTool("list_playbooks",
		mcp.WithDescription(
			"List every playbook document in the configured ClickUp folder: "+
				"name, id, creation/update dates and creator. "+
				"Use this first to discover which playbooks exist.",
		),
	)
}

// Handle processes the list_playbooks tool call.
func (t *ListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs := t.source.FetchDocuments(ctx)
	if len(docs) == 0 {
		return mcp.NewToolResultText(noDocumentsMessage), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Playbook Documents (%d)\n\n", len(docs))
	for _, doc := range docs {
		fmt.Fprintf(&sb, "- **%s** (id: `%s`)\n", doc.Name, doc.ID)
		fmt.Fprintf(&sb, "  created %s, updated %s, creator %s\n",
			doc.DateCreated.Format("2006-01-02"),
			doc.DateUpdated.Format("2006-01-02"),
			doc.Creator,
		)
	}

	return mcp.NewToolResultText(sb.String()), nil
}
