package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/opsdocs/clickup-playbook-mcp/internal/analyzer"
)

// SearchTool handles the search_playbooks MCP tool.
type SearchTool struct {
	source DocumentSource
}

// NewSearchTool creates a SearchTool.
func NewSearchTool(source DocumentSource) *SearchTool {
	return &SearchTool{source: source}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("search_playbooks",
		mcp.WithDescription(
			"Search the playbook documents by keyword. A document matches when "+
				"its name or content contains any query word; results are ranked by "+
				"total occurrence count across all words.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search keywords, whitespace separated"),
		),
	)
}

// Handle processes the search_playbooks tool call.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}

	docs := t.source.FetchDocuments(ctx)
	if len(docs) == 0 {
		return mcp.NewToolResultText(noDocumentsMessage), nil
	}

	results := analyzer.Search(docs, query)
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No playbooks match %q.", query)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Search Results for %q (%d)\n\n", query, len(results))
	for i, r := range results {
		fmt.Fprintf(&sb, "%d. **%s** (id: `%s`) — %d matches\n",
			i+1, r.Document.Name, r.Document.ID, r.Score)
	}

	return mcp.NewToolResultText(sb.String()), nil
}
