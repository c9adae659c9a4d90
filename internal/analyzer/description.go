package analyzer

import (
	"strings"
)

// descriptionLabels introduce a description section, tried before any
// fallback.
var descriptionLabels = []string{
	"description", "summary", "overview", "what", "purpose", "goal",
}

var descriptionMatcher = newSectionMatcher(descriptionLabels)

// minFallbackLineLength filters out headings-in-disguise and fragments when
// falling back to the first prose line.
const minFallbackLineLength = 20

// Description extracts a best-effort description: a labeled section first
// (capturing the rest of that paragraph, stopping at the next heading,
// bullet, or numbered line), then the first plain content line longer than
// minFallbackLineLength, then the document title.
func Description(content, title string) string {
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		rest, ok := descriptionMatcher.match(line)
		if !ok {
			continue
		}
		if desc := captureParagraph(lines, i, rest); desc != "" {
			return desc
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isStructuralLine(trimmed) {
			continue
		}
		if len(trimmed) > minFallbackLineLength {
			return trimmed
		}
	}

	return strings.TrimSpace(title)
}

// captureParagraph collects the label-line remainder plus the following
// plain lines, stopping at a blank line or a structural line.
func captureParagraph(lines []string, labelIdx int, rest string) string {
	parts := []string{}
	if rest != "" {
		parts = append(parts, rest)
	}
	for _, line := range lines[labelIdx+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isStructuralLine(trimmed) {
			break
		}
		parts = append(parts, trimmed)
	}
	return strings.Join(parts, " ")
}
