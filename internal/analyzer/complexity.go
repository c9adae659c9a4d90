package analyzer

import "strings"

// Complexity indicator buckets. Scoring counts substring occurrences of
// every keyword across the whole document, so repeated mentions weigh more.
var (
	highIndicators = []string{
		"complex", "complicated", "difficult", "advanced",
		"challenging", "intricate", "critical",
	}
	mediumIndicators = []string{
		"moderate", "standard", "intermediate", "typical", "involved",
	}
	lowIndicators = []string{
		"simple", "easy", "quick", "basic", "trivial",
		"straightforward", "minor",
	}
)

// Length thresholds for the size bonus.
const (
	longDocumentLength   = 2000
	mediumDocumentLength = 500
)

// Classify scores the three indicator buckets over the document content,
// adds a length bonus (long documents lean high, mid-size lean medium,
// short lean low), and picks the winning bucket. Ties resolve in the order
// high, medium, low; a document scoring zero everywhere is unknown.
func Classify(content string) Complexity {
	if strings.TrimSpace(content) == "" {
		return ComplexityUnknown
	}
	lower := strings.ToLower(content)

	high := countOccurrences(lower, highIndicators)
	medium := countOccurrences(lower, mediumIndicators)
	low := countOccurrences(lower, lowIndicators)

	switch {
	case len(content) > longDocumentLength:
		high++
	case len(content) > mediumDocumentLength:
		medium++
	default:
		low++
	}

	switch {
	case high == 0 && medium == 0 && low == 0:
		return ComplexityUnknown
	case high >= medium && high >= low:
		return ComplexityHigh
	case medium >= low:
		return ComplexityMedium
	default:
		return ComplexityLow
	}
}

// countOccurrences sums substring occurrence counts of every keyword.
func countOccurrences(haystack string, keywords []string) int {
	total := 0
	for _, k := range keywords {
		total += strings.Count(haystack, k)
	}
	return total
}
