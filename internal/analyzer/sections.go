package analyzer

import (
	"regexp"
	"strings"
)

// Shared line-shape helpers for the section-scanning extractors.

var (
	bulletLinePattern   = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+(.*)$`)
	numberedLinePattern = regexp.MustCompile(`^\s*\d+[.)]\s`)
)

// isStructuralLine reports whether a line is a heading, bullet, or
// numbered-list entry rather than plain prose.
func isStructuralLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	switch trimmed[0] {
	case '#', '-', '*', '>':
		return true
	}
	if strings.HasPrefix(trimmed, "•") {
		return true
	}
	return numberedLinePattern.MatchString(trimmed)
}

// sectionMatcher recognizes the lines that introduce a labeled section:
// "label: rest" anywhere at line start, or a markdown "## Label" heading.
type sectionMatcher struct {
	colon   *regexp.Regexp
	heading *regexp.Regexp
}

// newSectionMatcher builds a matcher for a set of section labels.
func newSectionMatcher(labels []string) sectionMatcher {
	escaped := make([]string, len(labels))
	for i, l := range labels {
		escaped[i] = regexp.QuoteMeta(l)
	}
	alternatives := strings.Join(escaped, "|")
	return sectionMatcher{
		colon:   regexp.MustCompile(`(?i)^\s*(?:#{1,6}\s*)?(?:` + alternatives + `)\s*:\s*(.*)$`),
		heading: regexp.MustCompile(`(?i)^\s*#{1,6}\s*(?:` + alternatives + `)\s*$`),
	}
}

// match reports whether line opens a section, returning the text after the
// colon (empty for headings).
func (m sectionMatcher) match(line string) (string, bool) {
	if sub := m.colon.FindStringSubmatch(line); sub != nil {
		return strings.TrimSpace(sub[1]), true
	}
	if m.heading.MatchString(line) {
		return "", true
	}
	return "", false
}

// labeledItems scans content for sections introduced by one of the matcher's
// labels and splits each section into discrete items. A section is the
// remainder of the label line plus the run of bullet/numbered lines that
// immediately follows it.
func labeledItems(content string, matcher sectionMatcher) []string {
	var items []string
	lines := strings.Split(content, "\n")

	for i := 0; i < len(lines); i++ {
		rest, ok := matcher.match(lines[i])
		if !ok {
			continue
		}

		if rest != "" {
			items = append(items, rest)
		}

		for j := i + 1; j < len(lines); j++ {
			bm := bulletLinePattern.FindStringSubmatch(lines[j])
			if bm == nil {
				i = j - 1
				break
			}
			if item := strings.TrimSpace(bm[1]); item != "" {
				items = append(items, item)
			}
			i = j
		}
	}

	return items
}

// dedupe removes case-insensitive duplicates, keeping first-seen order
// and casing.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// containsAny reports whether haystack contains any of the needles.
// Both sides are expected to be lower-cased already.
func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
