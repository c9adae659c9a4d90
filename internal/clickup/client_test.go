package clickup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchDocsPagination(t *testing.T) {
	var gotAuth string
	var gotParents []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotParents = append(gotParents, r.URL.Query().Get("parent_id"))

		resp := searchDocsResponse{}
		switch r.URL.Query().Get("next_cursor") {
		case "":
			resp.Docs = []Doc{{ID: "d1", Name: "First"}}
			resp.NextCursor = "cur-2"
		case "cur-2":
			resp.Docs = []Doc{{ID: "d2", Name: "Second"}}
		default:
			t.Errorf("unexpected cursor %q", r.URL.Query().Get("next_cursor"))
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "pk_token")
	docs, err := c.SearchDocs(context.Background(), "9001", "folder-7")
	require.NoError(t, err)

	assert.Equal(t, "pk_token", gotAuth)
	assert.Equal(t, []string{"folder-7", "folder-7"}, gotParents)
	require.Len(t, docs, 2)
	assert.Equal(t, "d1", docs[0].ID)
	assert.Equal(t, "d2", docs[1].ID)
}

func TestSearchDocsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"err":"Team not authorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad")
	_, err := c.SearchDocs(context.Background(), "9001", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "Team not authorized")
}

func TestListPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/workspaces/9001/docs/d1/pages", r.URL.Path)
		assert.Equal(t, "-1", r.URL.Query().Get("max_page_depth"))
		assert.Equal(t, "text/md", r.URL.Query().Get("content_format"))

		json.NewEncoder(w).Encode([]Page{
			{ID: "p1", DocID: "d1", Name: "Intro", Content: "Hello.", Pages: []Page{
				{ID: "p2", DocID: "d1", Name: "Steps", Content: "Do things."},
			}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "pk_token")
	pages, err := c.ListPages(context.Background(), "9001", "d1")
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "Intro", pages[0].Name)
	require.Len(t, pages[0].Pages, 1)
	assert.Equal(t, "Do things.", pages[0].Pages[0].Content)
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	c := NewClient("", "tok")
	assert.Equal(t, DefaultBaseURL, c.baseURL)
}
