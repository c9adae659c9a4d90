package clickup

import (
	"fmt"
	"strings"
	"time"
)

// Document is the unit the analyzer works on: a doc plus its concatenated
// page content. Immutable once fetched — nothing in this server mutates it.
type Document struct {
	ID          string
	Name        string
	Content     string
	DateCreated time.Time
	DateUpdated time.Time
	Creator     string
	FolderID    string
	URL         string
}

// newDocument builds a Document from an API doc entry and its pages.
// Page content is joined in API order, each page prefixed with its title
// so section labels inside subpages stay visible to the analyzer.
func newDocument(d Doc, pages []Page) Document {
	doc := Document{
		ID:          d.ID,
		Name:        d.Name,
		Content:     flattenPages(pages),
		DateCreated: time.UnixMilli(d.DateCreated),
		DateUpdated: time.UnixMilli(d.DateUpdated),
		Creator:     fmt.Sprintf("%d", d.Creator),
		URL:         docURL(d),
	}
	if d.Parent != nil {
		doc.FolderID = d.Parent.ID
	}
	return doc
}

// flattenPages concatenates page content depth-first, preserving order.
func flattenPages(pages []Page) string {
	var sb strings.Builder
	appendPages(&sb, pages)
	return strings.TrimSpace(sb.String())
}

func appendPages(sb *strings.Builder, pages []Page) {
	for _, p := range pages {
		if p.Name != "" {
			fmt.Fprintf(sb, "# %s\n\n", p.Name)
		}
		if p.Content != "" {
			sb.WriteString(p.Content)
			sb.WriteString("\n\n")
		}
		appendPages(sb, p.Pages)
	}
}

// docURL builds the canonical ClickUp web URL for a doc.
func docURL(d Doc) string {
	return fmt.Sprintf("https://app.clickup.com/%d/v/dc/%s", d.WorkspaceID, d.ID)
}
