package analyzer

import "strings"

// requirementLabels introduce a requirements section.
var requirementLabels = []string{
	"requirements",
	"prerequisites",
	"dependencies",
	"needed",
	"must have",
	"required",
	"necessary",
	"before starting",
	"pre-reqs",
	"setup",
}

// requirementContextWords flag a bullet as a requirement even outside a
// labeled section.
var requirementContextWords = []string{
	"access",
	"permission",
	"install",
	"configure",
	"setup",
	"account",
	"credential",
}

var requirementMatcher = newSectionMatcher(requirementLabels)

// Requirements extracts the discrete requirement items from a document:
// everything under a requirements-like label, plus any bullet line anywhere
// in the document whose text mentions a requirement context word. The
// result is deduplicated, first occurrence wins.
func Requirements(content string) []string {
	items := labeledItems(content, requirementMatcher)

	for _, line := range strings.Split(content, "\n") {
		m := bulletLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[1])
		if text == "" {
			continue
		}
		if containsAny(strings.ToLower(text), requirementContextWords) {
			items = append(items, text)
		}
	}

	return dedupe(items)
}
