package clickup

import (
	"context"
	"log"
)

// DocLister is the slice of Client the Fetcher needs. Lets tool tests
// substitute a stub without a real HTTP server.
type DocLister interface {
	SearchDocs(ctx context.Context, workspaceID, parentID string) ([]Doc, error)
	ListPages(ctx context.Context, workspaceID, docID string) ([]Page, error)
}

// Fetcher retrieves the playbook documents for a workspace. It is the
// fail-soft boundary: every error is logged and degraded to an empty list
// or empty content, never propagated. Callers always get a valid slice.
//
// There is no caching — every call re-fetches from the API.
type Fetcher struct {
	client      DocLister
	workspaceID string
	folderID    string
}

// NewFetcher creates a Fetcher scoped to a folder. An empty folderID fetches
// workspace-wide (the folder-scoped listing is the canonical mode).
func NewFetcher(client DocLister, workspaceID, folderID string) *Fetcher {
	return &Fetcher{client: client, workspaceID: workspaceID, folderID: folderID}
}

// FetchDocuments returns every playbook doc in the configured folder with
// its content pages resolved. Content fetches run sequentially and the
// listing order is preserved. A doc whose pages cannot be fetched is kept
// with empty content so it still shows up in listings.
func (f *Fetcher) FetchDocuments(ctx context.Context) []Document {
	docs, err := f.client.SearchDocs(ctx, f.workspaceID, f.folderID)
	if err != nil {
		log.Printf("WARNING: listing docs in folder %q: %v", f.folderID, err)
		return []Document{}
	}

	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		pages, err := f.client.ListPages(ctx, f.workspaceID, d.ID)
		if err != nil {
			log.Printf("WARNING: fetching pages for doc %s (%s): %v", d.ID, d.Name, err)
			pages = nil
		}
		out = append(out, newDocument(d, pages))
	}
	return out
}

// FetchDocument returns a single document by id, or false if the id is not
// in the configured folder.
func (f *Fetcher) FetchDocument(ctx context.Context, docID string) (Document, bool) {
	for _, doc := range f.FetchDocuments(ctx) {
		if doc.ID == docID {
			return doc, true
		}
	}
	return Document{}, false
}
