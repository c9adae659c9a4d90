package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/opsdocs/clickup-playbook-mcp/internal/analyzer"
	"github.com/opsdocs/clickup-playbook-mcp/internal/clickup"
	"github.com/opsdocs/clickup-playbook-mcp/internal/render"
)

// defaultRecommendLimit caps the comparison table size.
const defaultRecommendLimit = 5

// RecommendTool handles the recommend_playbooks MCP tool.
type RecommendTool struct {
	source DocumentSource
}

// NewRecommendTool creates a RecommendTool.
func NewRecommendTool(source DocumentSource) *RecommendTool {
	return &RecommendTool{source: source}
}

// Definition returns the MCP tool definition for registration.
func (t *RecommendTool) Definition() mcp.Tool {
	return mcp.NewTool("recommend_playbooks",
		mcp.WithDescription(
			"Recommend playbooks for a topic as a comparison table "+
				"(name, description, hours, timing, prerequisites, link). "+
				"Without a topic, every playbook is included.",
		),
		mcp.WithString("topic",
			mcp.Description("Topic keywords to match against. Optional."),
		),
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Max rows (default %d)", defaultRecommendLimit)),
		),
	)
}

// Handle processes the recommend_playbooks tool call.
func (t *RecommendTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := req.GetString("topic", "")
	limit := intArg(req, "limit", defaultRecommendLimit)
	if limit <= 0 {
		limit = defaultRecommendLimit
	}

	docs := t.source.FetchDocuments(ctx)
	if len(docs) == 0 {
		return mcp.NewToolResultText(noDocumentsMessage), nil
	}

	selected := docs
	if topic != "" {
		results := analyzer.Search(docs, topic)
		if len(results) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No playbooks match %q.", topic)), nil
		}
		selected = make([]clickup.Document, 0, len(results))
		for _, r := range results {
			selected = append(selected, r.Document)
		}
	}
	if len(selected) > limit {
		selected = selected[:limit]
	}

	var sb strings.Builder
	sb.WriteString("# Recommended Playbooks\n\n")
	sb.WriteString("| Name | Description | Hours | Timing | Prerequisites | URL |\n")
	sb.WriteString("|------|-------------|-------|--------|---------------|-----|\n")

	for _, doc := range selected {
		a := analyzer.Analyze(doc)
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s |\n",
			render.TableCell(doc.Name),
			render.TableCell(a.Description),
			render.TableCell(fieldCell(a.Hours)),
			render.TableCell(fieldCell(a.Timing)),
			render.TableCell(listCell(a.Prerequisites)),
			render.TableCell(doc.URL),
		)
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func fieldCell(f analyzer.Field) string {
	if !f.Found {
		return "—"
	}
	return f.Value
}

func listCell(items []string) string {
	if len(items) == 0 {
		return "—"
	}
	return strings.Join(items, "; ")
}
