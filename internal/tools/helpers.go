// Package tools implements the MCP tool handlers.
//
// Each tool is a struct that receives its dependencies via constructor and
// exposes Definition() for registration plus Handle() for dispatch. One
// file per tool.
//
// Error convention: anything the caller can fix (missing argument, unknown
// document id) comes back as a tool error result — text in the response
// payload, never a protocol-level fault. An empty document list is valid
// input and produces a "no documents found" message.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/opsdocs/clickup-playbook-mcp/internal/clickup"
)

// DocumentSource supplies the playbook documents. Satisfied by
// *clickup.Fetcher; tests substitute a stub.
type DocumentSource interface {
	FetchDocuments(ctx context.Context) []clickup.Document
	FetchDocument(ctx context.Context, docID string) (clickup.Document, bool)
}

// noDocumentsMessage is the shared empty-folder reply.
const noDocumentsMessage = "No playbook documents found in the configured folder."

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}
