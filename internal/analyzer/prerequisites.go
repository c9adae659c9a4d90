package analyzer

// prerequisiteLabels is intentionally narrower than requirementLabels.
// The two extractors may return overlapping items — prerequisites are not
// deduplicated against requirements.
var prerequisiteLabels = []string{
	"prerequisites",
	"pre-reqs",
	"pre-requisites",
	"before starting",
	"before you begin",
}

var prerequisiteMatcher = newSectionMatcher(prerequisiteLabels)

// Prerequisites extracts the items under prerequisite-style labels,
// deduplicated within the list itself only.
func Prerequisites(content string) []string {
	return dedupe(labeledItems(content, prerequisiteMatcher))
}
