// Package prompts implements the MCP prompt handlers.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// OverviewPrompt handles the playbook-overview MCP prompt.
// It instructs the host to walk the playbook folder and summarize it.
type OverviewPrompt struct{}

// NewOverviewPrompt creates an OverviewPrompt.
func NewOverviewPrompt() *OverviewPrompt {
	return &OverviewPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *OverviewPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("playbook-overview",
		mcp.WithPromptDescription(
			"Get an overview of the playbook folder: which playbooks exist, "+
				"what they cover, and how much effort each takes.",
		),
	)
}

// Handle processes the playbook-overview prompt request.
func (p *OverviewPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Playbook Folder Overview",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please run `list_playbooks` to see which playbook documents exist.\n\n" +
						"Then:\n" +
						"1. For each playbook, run `analyze_playbook` with its id\n" +
						"2. Summarize what each playbook covers in one sentence\n" +
						"3. Highlight the time estimate and complexity where available\n" +
						"4. Point out playbooks with unmet prerequisites I should prepare for",
				),
			},
		},
	}, nil
}
