package resources

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdocs/clickup-playbook-mcp/internal/clickup"
)

type stubSource struct {
	docs []clickup.Document
}

func (s *stubSource) FetchDocuments(ctx context.Context) []clickup.Document {
	return s.docs
}

func (s *stubSource) FetchDocument(ctx context.Context, docID string) (clickup.Document, bool) {
	for _, d := range s.docs {
		if d.ID == docID {
			return d, true
		}
	}
	return clickup.Document{}, false
}

func readRequest(uri string) mcp.ReadResourceRequest {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	return req
}

func TestHandleIndex(t *testing.T) {
	h := NewHandler(&stubSource{docs: []clickup.Document{
		{
			ID:          "d1",
			Name:        "Deploy Playbook",
			DateCreated: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			DateUpdated: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
			Creator:     "42",
			URL:         "https://app.clickup.com/9001/v/dc/d1",
		},
	}})

	contents, err := h.HandleIndex(context.Background(), readRequest(indexURI))
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "application/json", text.MIMEType)

	var entries []indexEntry
	require.NoError(t, json.Unmarshal([]byte(text.Text), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "d1", entries[0].ID)
	assert.Equal(t, "clickup://doc/d1", entries[0].URI)
	assert.Equal(t, "2024-03-01", entries[0].Created)
	assert.Equal(t, "42", entries[0].Creator)
}

func TestHandleIndexEmptyFolder(t *testing.T) {
	h := NewHandler(&stubSource{})

	contents, err := h.HandleIndex(context.Background(), readRequest(indexURI))
	require.NoError(t, err)

	text := contents[0].(mcp.TextResourceContents)
	var entries []indexEntry
	require.NoError(t, json.Unmarshal([]byte(text.Text), &entries))
	assert.Empty(t, entries)
}

func TestHandleDoc(t *testing.T) {
	h := NewHandler(&stubSource{docs: []clickup.Document{
		{ID: "d1", Name: "Deploy Playbook", Content: "# Steps\n\nShip it."},
	}})

	contents, err := h.HandleDoc(context.Background(), readRequest("clickup://doc/d1"))
	require.NoError(t, err)
	require.Len(t, contents, 2)

	md := contents[0].(mcp.TextResourceContents)
	assert.Equal(t, "text/markdown", md.MIMEType)
	assert.Contains(t, md.Text, "# Deploy Playbook")
	assert.Contains(t, md.Text, "Ship it.")

	html := contents[1].(mcp.TextResourceContents)
	assert.Equal(t, "text/html", html.MIMEType)
	assert.Contains(t, html.Text, "<h1>Steps</h1>")
}

func TestHandleDocEmptyContentSkipsHTML(t *testing.T) {
	h := NewHandler(&stubSource{docs: []clickup.Document{{ID: "d1", Name: "Empty"}}})

	contents, err := h.HandleDoc(context.Background(), readRequest("clickup://doc/d1"))
	require.NoError(t, err)
	require.Len(t, contents, 1)
	assert.Equal(t, "text/markdown", contents[0].(mcp.TextResourceContents).MIMEType)
}

func TestHandleDocNotFound(t *testing.T) {
	h := NewHandler(&stubSource{})

	_, err := h.HandleDoc(context.Background(), readRequest("clickup://doc/nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document not found: nope")
}

func TestHandleDocBadURI(t *testing.T) {
	h := NewHandler(&stubSource{})

	_, err := h.HandleDoc(context.Background(), readRequest("file:///etc/passwd"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid document URI")
}
