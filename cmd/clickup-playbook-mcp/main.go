// clickup-playbook-mcp: an MCP server over a ClickUp playbook folder.
//
// Exposes document listing, heuristic field extraction, keyword search, and
// question answering over the playbook documents in a ClickUp folder to any
// MCP host (Claude Code, Cursor, VS Code Copilot, ...).
//
// Usage:
//
//	clickup-playbook-mcp serve      # Start MCP server (stdio transport)
//	clickup-playbook-mcp version    # Print version
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/opsdocs/clickup-playbook-mcp/internal/config"
	mcpserver "github.com/opsdocs/clickup-playbook-mcp/internal/server"
	"github.com/opsdocs/clickup-playbook-mcp/internal/updater"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("clickup-playbook-mcp v%s\n", mcpserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s, cleanup := mcpserver.New(cfg)
	defer cleanup()

	// Background version check — prints to stderr so it doesn't interfere
	// with MCP's stdio transport on stdout.
	go checkForUpdates()

	// Exit cleanly on interrupt; the stdio server ends when the host
	// closes stdin.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		os.Exit(0)
	}()

	return server.ServeStdio(s)
}

// checkForUpdates runs a non-blocking version check and prints a notice to
// stderr if a newer release exists. Best-effort — failures are silent.
func checkForUpdates() {
	result := updater.CheckVersion(mcpserver.Version)
	if result.UpdateAvailable {
		fmt.Fprintf(os.Stderr,
			"\n  Update available: v%s → v%s\n  Release: %s\n\n",
			result.CurrentVersion, result.LatestVersion, result.ReleaseURL,
		)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `clickup-playbook-mcp v%s — ClickUp playbook MCP server

Usage:
  clickup-playbook-mcp serve      Start the MCP server (stdio transport)
  clickup-playbook-mcp version    Print version

Environment:
  CLICKUP_API_TOKEN      ClickUp API token (required)
  CLICKUP_WORKSPACE_ID   Workspace id (required)
  CLICKUP_FOLDER_ID      Folder id holding the playbooks (optional; empty = whole workspace)
  CLICKUP_MCP_CONFIG     Path to a YAML config file filling in unset values (optional)

Configuration for your MCP host:

  {
    "mcpServers": {
      "clickup-playbooks": {
        "command": "clickup-playbook-mcp",
        "args": ["serve"],
        "env": {
          "CLICKUP_API_TOKEN": "pk_...",
          "CLICKUP_WORKSPACE_ID": "9012345678",
          "CLICKUP_FOLDER_ID": "90123456789"
        }
      }
    }
  }
`, mcpserver.Version)
}
