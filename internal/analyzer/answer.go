package analyzer

import (
	"fmt"
	"strings"

	"github.com/opsdocs/clickup-playbook-mcp/internal/clickup"
)

// noInformation is the canned reply for empty-result branches.
const noInformation = "No information found in the playbook documents for that question."

// topAnswerResults caps how many search hits the description and generic
// branches include.
const topAnswerResults = 3

// Answer produces a templated markdown reply to a free-text question over
// the document set. Triage is a fixed keyword check, in priority order:
//
//  1. estimate/time/duration  → every document's Estimation + Complexity
//  2. requirement/need/prerequisite → every document's Requirements
//  3. description/what/how    → top search results with Description, Tags,
//     Estimation
//  4. anything else           → generic top search results
//
// Earlier branches win — "what are the requirements" is a requirements
// question, not a description question.
func Answer(docs []clickup.Document, question string) string {
	if len(docs) == 0 {
		return noInformation
	}

	q := strings.ToLower(question)
	switch {
	case containsAny(q, []string{"estimate", "time", "duration"}):
		return answerEstimates(docs)
	case containsAny(q, []string{"requirement", "need", "prerequisite"}):
		return answerRequirements(docs)
	case containsAny(q, []string{"description", "what", "how"}):
		return answerDescriptions(docs, question)
	default:
		return answerGeneric(docs, question)
	}
}

func answerEstimates(docs []clickup.Document) string {
	var sb strings.Builder
	sb.WriteString("## Time Estimates\n\n")

	for _, doc := range docs {
		a := Analyze(doc)
		fmt.Fprintf(&sb, "**%s**\n", doc.Name)
		fmt.Fprintf(&sb, "- Estimation: %s\n", orAbsent(a.Estimation))
		fmt.Fprintf(&sb, "- Complexity: %s\n\n", a.Complexity)
	}
	return strings.TrimSpace(sb.String())
}

func answerRequirements(docs []clickup.Document) string {
	var sb strings.Builder
	sb.WriteString("## Requirements\n\n")

	for _, doc := range docs {
		reqs := Requirements(doc.Content)
		fmt.Fprintf(&sb, "**%s**\n", doc.Name)
		if len(reqs) == 0 {
			sb.WriteString("- none listed\n\n")
			continue
		}
		for _, r := range reqs {
			fmt.Fprintf(&sb, "- %s\n", r)
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

func answerDescriptions(docs []clickup.Document, question string) string {
	results := topResults(docs, question)
	if len(results) == 0 {
		return noInformation
	}

	var sb strings.Builder
	sb.WriteString("## Matching Playbooks\n\n")
	for _, r := range results {
		a := Analyze(r.Document)
		fmt.Fprintf(&sb, "**%s**\n", r.Document.Name)
		fmt.Fprintf(&sb, "- Description: %s\n", a.Description)
		fmt.Fprintf(&sb, "- Tags: %s\n", orNone(a.Tags))
		fmt.Fprintf(&sb, "- Estimation: %s\n\n", orAbsent(a.Estimation))
	}
	return strings.TrimSpace(sb.String())
}

func answerGeneric(docs []clickup.Document, question string) string {
	results := topResults(docs, question)
	if len(results) == 0 {
		return noInformation
	}

	var sb strings.Builder
	sb.WriteString("## Closest Playbooks\n\n")
	for _, r := range results {
		a := Analyze(r.Document)
		fmt.Fprintf(&sb, "**%s**\n", r.Document.Name)
		fmt.Fprintf(&sb, "- Description: %s\n", a.Description)
		fmt.Fprintf(&sb, "- Estimation: %s\n", orAbsent(a.Estimation))
		fmt.Fprintf(&sb, "- Requirements: %s\n", orNone(a.Requirements))
		fmt.Fprintf(&sb, "- Tags: %s\n\n", orNone(a.Tags))
	}
	return strings.TrimSpace(sb.String())
}

// topResults runs Search over the question text and truncates to the cap.
func topResults(docs []clickup.Document, question string) []SearchResult {
	results := Search(docs, question)
	if len(results) > topAnswerResults {
		results = results[:topAnswerResults]
	}
	return results
}

func orAbsent(f Field) string {
	if !f.Found {
		return "not specified"
	}
	return f.Value
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
