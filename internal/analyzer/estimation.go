package analyzer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// hoursPerPoint is the fixed sprint-point to hours conversion.
const hoursPerPoint = 8

// Sprint-point phrasings, most specific first. Shared with Hours.
var pointPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:sprint|story)[\s-]*points?\b`),
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*points?\b`),
}

// Labeled time-duration phrasings ("Estimate: 3 days").
var labeledDurationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:estimated\s+time|time\s+estimate|estimation|estimated?|effort)\s*:\s*(\d+(?:\.\d+)?\s*(?:hours?|hrs?|days?|weeks?|months?))\b`),
}

// Any bare number followed by a time unit.
var genericDurationPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?\s*(?:hours?|hrs?|days?|weeks?|months?))\b`)

// Bracketed tag in the title, e.g. "Deploy [2h]".
var titleTagPattern = regexp.MustCompile(`(?i)\[(\d+(?:\.\d+)?\s*[a-z]+)\]`)

// Estimation extracts a time estimate from content, falling back to a
// bracketed title tag. Priority: sprint/story points (with the fixed
// hours-per-point conversion), then labeled durations, then any bare
// number+unit, then the title tag.
func Estimation(content, title string) (string, bool) {
	if points, ok := matchPoints(content); ok {
		return formatPoints(points), true
	}

	for _, re := range labeledDurationPatterns {
		if m := re.FindStringSubmatch(content); m != nil {
			return normalizeSpace(m[1]), true
		}
	}

	if m := genericDurationPattern.FindStringSubmatch(content); m != nil {
		return normalizeSpace(m[1]), true
	}

	if m := titleTagPattern.FindStringSubmatch(title); m != nil {
		return normalizeSpace(m[1]), true
	}

	return "", false
}

// matchPoints returns the first sprint-point figure found in content.
func matchPoints(content string) (float64, bool) {
	for _, re := range pointPatterns {
		m := re.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		points, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return points, true
	}
	return 0, false
}

// formatPoints renders a sprint-point estimate with its hour conversion.
func formatPoints(points float64) string {
	return fmt.Sprintf("%s sprint points (%s hours)",
		formatNumber(points), formatNumber(points*hoursPerPoint))
}

// formatNumber renders a float without a trailing ".0" for whole values.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// normalizeSpace collapses internal whitespace runs and trims the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
