package analyzer

import (
	"regexp"
	"strings"
)

// tagCategory maps a category tag to the keywords that imply it. The
// dictionary is a static ordered table — category order is part of the
// observable output.
type tagCategory struct {
	Name     string
	Keywords []string
}

var tagCategories = []tagCategory{
	{"api", []string{"api", "endpoint", "rest", "graphql", "webhook", "integration"}},
	{"database", []string{"database", "sql", "postgres", "mysql", "migration", "schema"}},
	{"deployment", []string{"deploy", "deployment", "release", "rollout", "ci/cd", "kubernetes", "docker"}},
	{"security", []string{"security", "authentication", "authorization", "encryption", "vulnerability", "oauth"}},
	{"monitoring", []string{"monitoring", "metrics", "alerting", "observability", "dashboards", "logging"}},
	{"testing", []string{"testing", "unit test", "integration test", "qa process", "regression"}},
	{"documentation", []string{"documentation", "readme", "runbook", "knowledge base", "wiki"}},
	{"maintenance", []string{"maintenance", "upgrade", "cleanup", "deprecation", "housekeeping"}},
}

var (
	explicitTagLinePattern = regexp.MustCompile(`(?im)^\s*(?:tags?|categor(?:y|ies)|labels?)\s*:\s*(.+)$`)
	hashTagPattern         = regexp.MustCompile(`#([a-zA-Z][\w-]+)`)
)

// Tags combines explicit tag lines and hash-prefixed tokens with tags
// inferred from the category keyword dictionary. A category tag is added
// when any of its keywords appears anywhere in content or title. The
// result is lower-cased and deduplicated.
func Tags(content, title string) []string {
	var tags []string

	for _, m := range explicitTagLinePattern.FindAllStringSubmatch(content, -1) {
		for _, part := range strings.Split(m[1], ",") {
			if tag := strings.ToLower(strings.TrimSpace(part)); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	for _, m := range hashTagPattern.FindAllStringSubmatch(content, -1) {
		tags = append(tags, strings.ToLower(m[1]))
	}

	haystack := strings.ToLower(content + " " + title)
	for _, cat := range tagCategories {
		if containsAny(haystack, cat.Keywords) {
			tags = append(tags, cat.Name)
		}
	}

	return dedupe(tags)
}
