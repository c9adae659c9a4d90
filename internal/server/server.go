// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates the ClickUp client and fetcher
// and injects them into the tools, prompts, and resources. No business
// logic lives here — only wiring.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/opsdocs/clickup-playbook-mcp/internal/clickup"
	"github.com/opsdocs/clickup-playbook-mcp/internal/config"
	"github.com/opsdocs/clickup-playbook-mcp/internal/prompts"
	"github.com/opsdocs/clickup-playbook-mcp/internal/resources"
	"github.com/opsdocs/clickup-playbook-mcp/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts, and
// resources registered.
//
// The returned cleanup function releases the HTTP client's idle connections
// and must be called on shutdown (typically via defer).
func New(cfg config.Config) (*server.MCPServer, func()) {
	client := clickup.NewClient(cfg.APIURL, cfg.APIToken)
	fetcher := clickup.NewFetcher(client, cfg.WorkspaceID, cfg.FolderID)

	s := server.NewMCPServer(
		"clickup-playbook-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register tools ---

	listTool := tools.NewListTool(fetcher)
	s.AddTool(listTool.Definition(), listTool.Handle)

	getTool := tools.NewGetTool(fetcher)
	s.AddTool(getTool.Definition(), getTool.Handle)

	analyzeTool := tools.NewAnalyzeTool(fetcher)
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	searchTool := tools.NewSearchTool(fetcher)
	s.AddTool(searchTool.Definition(), searchTool.Handle)

	askTool := tools.NewAskTool(fetcher)
	s.AddTool(askTool.Definition(), askTool.Handle)

	recommendTool := tools.NewRecommendTool(fetcher)
	s.AddTool(recommendTool.Definition(), recommendTool.Handle)

	// --- Register prompts ---

	overviewPrompt := prompts.NewOverviewPrompt()
	s.AddPrompt(overviewPrompt.Definition(), overviewPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(fetcher)
	s.AddResource(resourceHandler.IndexResource(), resourceHandler.HandleIndex)
	s.AddResourceTemplate(resourceHandler.DocTemplate(), resourceHandler.HandleDoc)

	cleanup := func() { client.Close() }
	return s, cleanup
}

// serverInstructions returns the system instructions that tell the AI how
// to use the playbook tools effectively.
func serverInstructions() string {
	return `You have access to a ClickUp playbook folder through this server.

## What the tools do

- list_playbooks: discover which playbook documents exist (names and ids)
- get_playbook: read one playbook in full — extracted fields plus raw content
- analyze_playbook: extracted fields only (estimation, requirements, tags,
  complexity, hours, prerequisites, timing)
- search_playbooks: keyword search ranked by occurrence count
- ask_playbook_question: templated answers for estimate/requirement/description
  questions
- recommend_playbooks: a comparison table of matching playbooks

## How extraction works

All fields are extracted with pattern heuristics from free text. Treat the
values as best-effort: a "not specified" field means the document doesn't
phrase it in a recognizable way, not that the information is missing. When a
field matters, read the raw content via get_playbook and verify.

## Freshness

Nothing is cached — every tool call re-reads the folder from ClickUp, so
results always reflect the current documents. There is no write access:
these tools never modify anything in ClickUp.

## Errors

A reply starting with "document not found" or "No playbook documents found"
is an expected condition, not a failure. Re-run list_playbooks to get
current ids before retrying.`
}
