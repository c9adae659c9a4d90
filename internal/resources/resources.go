// Package resources implements the MCP resource handlers.
//
// Resources give hosts read-only, URI-addressed access to the playbooks:
// a JSON index of the folder and one resource per document id with every
// extracted field plus the raw content.
package resources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/yuin/goldmark"

	"github.com/opsdocs/clickup-playbook-mcp/internal/analyzer"
	"github.com/opsdocs/clickup-playbook-mcp/internal/clickup"
	"github.com/opsdocs/clickup-playbook-mcp/internal/render"
)

// docURIPrefix is the stable per-document addressing scheme: one document
// per identifier.
const docURIPrefix = "clickup://doc/"

// indexURI addresses the folder-wide document index.
const indexURI = "clickup://folder/index"

// DocumentSource supplies the playbook documents (same contract as the
// tools package).
type DocumentSource interface {
	FetchDocuments(ctx context.Context) []clickup.Document
	FetchDocument(ctx context.Context, docID string) (clickup.Document, bool)
}

// Handler serves the playbook resources.
type Handler struct {
	source DocumentSource
}

// NewHandler creates a resource Handler.
func NewHandler(source DocumentSource) *Handler {
	return &Handler{source: source}
}

// IndexResource returns the definition of the folder index resource.
func (h *Handler) IndexResource() mcp.Resource {
	return mcp.NewResource(
		indexURI,
		"Playbook Folder Index",
		mcp.WithResourceDescription("JSON listing of every playbook document in the configured folder"),
		mcp.WithMIMEType("application/json"),
	)
}

// indexEntry is one row of the JSON index.
type indexEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	URI     string `json:"uri"`
	Created string `json:"created"`
	Updated string `json:"updated"`
	Creator string `json:"creator"`
	URL     string `json:"url,omitempty"`
}

// HandleIndex serves the folder index as JSON. An empty folder is a valid
// empty index, not an error.
func (h *Handler) HandleIndex(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	docs := h.source.FetchDocuments(ctx)

	entries := make([]indexEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, indexEntry{
			ID:      doc.ID,
			Name:    doc.Name,
			URI:     docURIPrefix + doc.ID,
			Created: doc.DateCreated.Format("2006-01-02"),
			Updated: doc.DateUpdated.Format("2006-01-02"),
			Creator: doc.Creator,
			URL:     doc.URL,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling index: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// DocTemplate returns the per-document resource template.
func (h *Handler) DocTemplate() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(
		docURIPrefix+"{id}",
		"Playbook Document",
		mcp.WithTemplateDescription(
			"One playbook document, fully rendered: extracted fields, metadata, and raw content",
		),
		mcp.WithTemplateMIMEType("text/markdown"),
	)
}

// HandleDoc serves one document by id: a markdown rendering of the analysis
// plus raw content, and an HTML rendering of the content.
func (h *Handler) HandleDoc(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	docID := strings.TrimPrefix(req.Params.URI, docURIPrefix)
	if docID == "" || docID == req.Params.URI {
		return nil, fmt.Errorf("invalid document URI: %s", req.Params.URI)
	}

	doc, ok := h.source.FetchDocument(ctx, docID)
	if !ok {
		return nil, fmt.Errorf("document not found: %s", docID)
	}

	contents := []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     render.Document(doc, analyzer.Analyze(doc)),
		},
	}

	if html, err := renderHTML(doc.Content); err == nil && html != "" {
		contents = append(contents, mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/html",
			Text:     html,
		})
	}

	return contents, nil
}

// renderHTML converts the document's markdown content to HTML.
func renderHTML(markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
