// Package render formats analysis results as markdown text blocks. Every
// tool and resource response is a single human-readable string — there is
// no structured output surface.
package render

import (
	"fmt"
	"strings"

	"github.com/opsdocs/clickup-playbook-mcp/internal/analyzer"
	"github.com/opsdocs/clickup-playbook-mcp/internal/clickup"
)

// Analysis renders the extracted fields of one document.
func Analysis(doc clickup.Document, a analyzer.Analysis) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", doc.Name)
	fmt.Fprintf(&sb, "**Description:** %s\n\n", a.Description)
	fmt.Fprintf(&sb, "**Estimation:** %s\n", fieldOr(a.Estimation, "not specified"))
	fmt.Fprintf(&sb, "**Hours:** %s\n", fieldOr(a.Hours, "not specified"))
	fmt.Fprintf(&sb, "**Timing:** %s\n", fieldOr(a.Timing, "not specified"))
	fmt.Fprintf(&sb, "**Complexity:** %s\n\n", a.Complexity)

	writeList(&sb, "Requirements", a.Requirements)
	writeList(&sb, "Prerequisites", a.Prerequisites)

	fmt.Fprintf(&sb, "**Tags:** %s\n", listOr(a.Tags, "none"))

	return sb.String()
}

// Document renders the full per-document view: extracted fields, metadata,
// and the raw content appended.
func Document(doc clickup.Document, a analyzer.Analysis) string {
	var sb strings.Builder

	sb.WriteString(Analysis(doc, a))

	sb.WriteString("\n## Metadata\n\n")
	fmt.Fprintf(&sb, "- ID: %s\n", doc.ID)
	fmt.Fprintf(&sb, "- Created: %s\n", doc.DateCreated.Format("2006-01-02"))
	fmt.Fprintf(&sb, "- Updated: %s\n", doc.DateUpdated.Format("2006-01-02"))
	fmt.Fprintf(&sb, "- Creator: %s\n", doc.Creator)
	if doc.URL != "" {
		fmt.Fprintf(&sb, "- URL: %s\n", doc.URL)
	}

	sb.WriteString("\n## Content\n\n")
	if doc.Content == "" {
		sb.WriteString("_(content unavailable)_\n")
	} else {
		sb.WriteString(doc.Content)
		sb.WriteString("\n")
	}

	return sb.String()
}

// writeList writes a titled bullet list, or a "none listed" line.
func writeList(sb *strings.Builder, title string, items []string) {
	fmt.Fprintf(sb, "**%s:**\n", title)
	if len(items) == 0 {
		sb.WriteString("- none listed\n")
	} else {
		for _, item := range items {
			fmt.Fprintf(sb, "- %s\n", item)
		}
	}
	sb.WriteString("\n")
}

func fieldOr(f analyzer.Field, fallback string) string {
	if !f.Found {
		return fallback
	}
	return f.Value
}

func listOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

// TableCell escapes pipe characters and newlines so free text can sit in a
// markdown table cell.
func TableCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
