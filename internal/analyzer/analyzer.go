// Package analyzer extracts structured fields from free-text playbook
// documents using ordered regular-expression heuristics.
//
// Every extractor is a pure function of (content, title): no state, no I/O,
// no errors. Extractors try an ordered list of candidate patterns and return
// the first one that matches — later patterns are fallbacks, not aggregated
// signals, so more specific phrasings always win over generic ones. Matching
// is case-insensitive; extracted text keeps the document's original casing.
//
// A missing field is a value, not a failure: scalar extractors return a
// Field with Found=false and list extractors return an empty slice. All
// extractors tolerate empty content.
package analyzer

import (
	"github.com/opsdocs/clickup-playbook-mcp/internal/clickup"
)

// Field is an extracted free-text value that may be absent.
type Field struct {
	Value string
	Found bool
}

// field wraps an extractor result pair.
func field(value string, found bool) Field {
	return Field{Value: value, Found: found}
}

// Complexity is the bucket picked by the complexity classifier.
type Complexity string

const (
	ComplexityLow     Complexity = "low"
	ComplexityMedium  Complexity = "medium"
	ComplexityHigh    Complexity = "high"
	ComplexityUnknown Complexity = "unknown"
)

// Analysis holds every field extracted from one document. It is derived
// and ephemeral — recomputed on each call, never persisted.
type Analysis struct {
	Estimation    Field
	Description   string
	Requirements  []string
	Tags          []string
	Complexity    Complexity
	Hours         Field
	Prerequisites []string
	Timing        Field
}

// Analyze runs all extractors over one document. Deterministic: the same
// document always yields the same analysis, field values and list order
// included.
func Analyze(doc clickup.Document) Analysis {
	return Analysis{
		Estimation:    field(Estimation(doc.Content, doc.Name)),
		Description:   Description(doc.Content, doc.Name),
		Requirements:  Requirements(doc.Content),
		Tags:          Tags(doc.Content, doc.Name),
		Complexity:    Classify(doc.Content),
		Hours:         field(Hours(doc.Content)),
		Prerequisites: Prerequisites(doc.Content),
		Timing:        field(Timing(doc.Content)),
	}
}
