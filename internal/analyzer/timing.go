package analyzer

import (
	"regexp"
	"strings"
)

var (
	timingLabelPattern = regexp.MustCompile(
		`(?im)^\s*(?:#{1,6}\s*)?(?:timing|timeline|timeframe|completion time|duration|implementation takes)\s*:\s*(.+)$`)

	// "takes about 2 weeks", "requires approximately 3 days"
	timingPhrasePattern = regexp.MustCompile(
		`(?i)(?:takes|requires)\s+((?:about|around|approximately)\s+)?(\d+(?:\.\d+)?(?:\s*(?:-|to)\s*\d+(?:\.\d+)?)?\s*(?:hours?|days?|weeks?|months?))\b`)

	// "How long does the playbook implementation take? About 2 weeks"
	howLongPattern = regexp.MustCompile(`(?im)^\s*how long\s*:?\s*(.+)$`)
)

// timingBoilerplate is a question prefix that shows up in FAQ-style
// playbooks; it is stripped from the captured answer.
const timingBoilerplate = "does the playbook implementation take?"

// Timing extracts free-text timing information: a labeled timing section,
// then a "takes/requires about …" phrase, then a "how long" question line.
func Timing(content string) (string, bool) {
	if m := timingLabelPattern.FindStringSubmatch(content); m != nil {
		return stripTimingBoilerplate(m[1]), true
	}

	if m := timingPhrasePattern.FindStringSubmatch(content); m != nil {
		return normalizeSpace(m[1] + m[2]), true
	}

	if m := howLongPattern.FindStringSubmatch(content); m != nil {
		return stripTimingBoilerplate(m[1]), true
	}

	return "", false
}

// stripTimingBoilerplate drops the known question prefix, if present.
func stripTimingBoilerplate(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	if idx := strings.Index(lower, timingBoilerplate); idx != -1 {
		s = s[idx+len(timingBoilerplate):]
	}
	return strings.TrimSpace(s)
}
