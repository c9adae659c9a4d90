package analyzer

import (
	"fmt"
	"regexp"
)

// Direct hour phrasings, tried after sprint points, in this order.
var hourPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*hours?\b`),
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*hrs?\b`),
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*h\b`),
	regexp.MustCompile(`(?im)^\s*(?:hours|duration)\s*:\s*(\d+(?:\.\d+)?)\s*(?:hours?)?\b`),
}

// Hours extracts an hour figure. Sprint/story points win over direct hour
// phrasings and are converted with the same fixed factor as Estimation.
// Independent of Estimation — the two fields may disagree when a document
// mixes phrasings.
func Hours(content string) (string, bool) {
	if points, ok := matchPoints(content); ok {
		return fmt.Sprintf("%s hours", formatNumber(points*hoursPerPoint)), true
	}

	for _, re := range hourPatterns {
		if m := re.FindStringSubmatch(content); m != nil {
			return fmt.Sprintf("%s hours", m[1]), true
		}
	}

	return "", false
}
