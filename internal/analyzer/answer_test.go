package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opsdocs/clickup-playbook-mcp/internal/clickup"
)

func answerDocs() []clickup.Document {
	return []clickup.Document{
		doc("1", "Deploy Playbook", "Estimate: 3 days\nRequirements:\n- access to production"),
		doc("2", "Audit Playbook", "Sized at 5 points.\nCovers the quarterly audit process in detail."),
	}
}

func TestAnswerEstimateBranch(t *testing.T) {
	got := Answer(answerDocs(), "How much time does each playbook take?")

	assert.Contains(t, got, "## Time Estimates")
	assert.Contains(t, got, "Deploy Playbook")
	assert.Contains(t, got, "3 days")
	assert.Contains(t, got, "Audit Playbook")
	assert.Contains(t, got, "5 sprint points (40 hours)")
	assert.Contains(t, got, "Complexity:")
}

func TestAnswerRequirementsBranch(t *testing.T) {
	got := Answer(answerDocs(), "What do I need before starting?")

	// "need" wins over "what" — requirements triage is checked first.
	assert.Contains(t, got, "## Requirements")
	assert.Contains(t, got, "access to production")
	assert.Contains(t, got, "none listed")
}

func TestAnswerDescriptionBranch(t *testing.T) {
	got := Answer(answerDocs(), "what is the audit playbook about?")

	assert.Contains(t, got, "## Matching Playbooks")
	assert.Contains(t, got, "Audit Playbook")
	assert.Contains(t, got, "Description:")
	assert.Contains(t, got, "Tags:")
}

func TestAnswerGenericBranch(t *testing.T) {
	got := Answer(answerDocs(), "quarterly audit")

	assert.Contains(t, got, "## Closest Playbooks")
	assert.Contains(t, got, "Audit Playbook")
	assert.Contains(t, got, "Requirements:")
}

func TestAnswerTriagePriority(t *testing.T) {
	// Mentions both "time" and "requirement": the estimate branch is
	// checked first and wins.
	got := Answer(answerDocs(), "time and requirement overview please")
	assert.Contains(t, got, "## Time Estimates")
	assert.NotContains(t, got, "## Requirements")
}

func TestAnswerNoDocuments(t *testing.T) {
	assert.Equal(t, noInformation, Answer(nil, "what is this?"))
}

func TestAnswerNoSearchHits(t *testing.T) {
	got := Answer(answerDocs(), "unrelatedseventerm")
	assert.Equal(t, noInformation, got)
}

func TestAnswerGenericCapsResults(t *testing.T) {
	docs := []clickup.Document{
		doc("1", "A", "audit one"),
		doc("2", "B", "audit two"),
		doc("3", "C", "audit three"),
		doc("4", "D", "audit four"),
	}
	got := Answer(docs, "audit")
	assert.Equal(t, 3, strings.Count(got, "- Description:"))
}
