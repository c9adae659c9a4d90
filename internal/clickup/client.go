// Package clickup talks to the ClickUp Docs API (v3) and exposes the
// playbook documents as a flat, immutable list.
//
// The package has two layers:
//   - Client: a thin typed wrapper over the REST endpoints. Returns errors.
//   - Fetcher: the fail-soft collaborator consumed by the tools. Logs and
//     swallows errors so the rest of the server always works with a valid
//     (possibly empty) document list.
package clickup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public ClickUp API root.
const DefaultBaseURL = "https://api.clickup.com/api"

// Client communicates with the ClickUp HTTP API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a Client. An empty baseURL falls back to the public API.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Doc is a document entry as returned by the docs search endpoint.
// Content is not included here — pages are fetched separately.
type Doc struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	DateCreated int64   `json:"date_created"`
	DateUpdated int64   `json:"date_updated"`
	Creator     int64   `json:"creator"`
	WorkspaceID int64   `json:"workspace_id"`
	Parent      *Parent `json:"parent,omitempty"`
}

// Parent identifies where a doc lives (folder, list, space or workspace).
type Parent struct {
	ID   string `json:"id"`
	Type int    `json:"type"`
}

// Page is a single content page of a doc. Pages nest.
type Page struct {
	ID      string `json:"id"`
	DocID   string `json:"doc_id"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Pages   []Page `json:"pages,omitempty"`
}

// searchDocsResponse is the body of GET /v3/workspaces/{id}/docs.
type searchDocsResponse struct {
	Docs       []Doc  `json:"docs"`
	NextCursor string `json:"next_cursor"`
}

// SearchDocs lists all docs in a workspace, optionally scoped to a parent
// (folder) id. It follows pagination cursors until the listing is exhausted,
// preserving the API's ordering.
func (c *Client) SearchDocs(ctx context.Context, workspaceID, parentID string) ([]Doc, error) {
	var all []Doc
	cursor := ""
	for {
		u := fmt.Sprintf("%s/v3/workspaces/%s/docs", c.baseURL, url.PathEscape(workspaceID))
		q := url.Values{}
		if parentID != "" {
			q.Set("parent_id", parentID)
		}
		if cursor != "" {
			q.Set("next_cursor", cursor)
		}
		if len(q) > 0 {
			u += "?" + q.Encode()
		}

		var page searchDocsResponse
		if err := c.get(ctx, u, &page); err != nil {
			return nil, fmt.Errorf("search docs: %w", err)
		}
		all = append(all, page.Docs...)

		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}
	return all, nil
}

// ListPages fetches every content page of a doc as markdown, subpages
// included, in the order the API returns them.
func (c *Client) ListPages(ctx context.Context, workspaceID, docID string) ([]Page, error) {
	u := fmt.Sprintf("%s/v3/workspaces/%s/docs/%s/pages?max_page_depth=-1&content_format=text%%2Fmd",
		c.baseURL, url.PathEscape(workspaceID), url.PathEscape(docID))

	var pages []Page
	if err := c.get(ctx, u, &pages); err != nil {
		return nil, fmt.Errorf("list pages for doc %s: %w", docID, err)
	}
	return pages, nil
}

// get performs an authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
