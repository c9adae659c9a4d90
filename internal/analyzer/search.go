package analyzer

import (
	"sort"
	"strings"

	"github.com/opsdocs/clickup-playbook-mcp/internal/clickup"
)

// minTokenLength drops noise words ("a", "to", "of") from queries.
const minTokenLength = 3

// SearchResult is one matched document with its relevance score.
type SearchResult struct {
	Document clickup.Document
	Score    int
}

// Search matches documents against a free-text query. The query is split on
// whitespace, short tokens are discarded, and a document matches when its
// name or content contains any remaining token (case-insensitive substring,
// OR semantics). Matches are ranked descending by the total occurrence
// count summed over all tokens — a document repeating one token many times
// outranks one matching several tokens once each. Ties keep the original
// document order.
func Search(docs []clickup.Document, query string) []SearchResult {
	tokens := queryTokens(query)
	if len(tokens) == 0 {
		return nil
	}

	var results []SearchResult
	for _, doc := range docs {
		haystack := strings.ToLower(doc.Name + " " + doc.Content)
		score := 0
		for _, tok := range tokens {
			score += strings.Count(haystack, tok)
		}
		if score > 0 {
			results = append(results, SearchResult{Document: doc, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// queryTokens lower-cases and tokenizes a query, dropping short tokens.
func queryTokens(query string) []string {
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		if len(tok) >= minTokenLength {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
