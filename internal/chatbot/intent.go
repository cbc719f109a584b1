// Package chatbot implements the conversational assistant: fuzzy intent
// classification, per-session dialogue state, and the four-question
// recommendation funnel.
package chatbot

import (
	"strings"

	"github.com/adrg/strutil"
	strmetrics "github.com/adrg/strutil/metrics"

	"github.com/itech-institute/itech-site-go/internal/catalog"
)

// Matcher classifies user messages against the intent catalog using
// normalized Levenshtein similarity on a 0-100 scale. It is read-only
// after construction and safe for concurrent use.
type Matcher struct {
	intents   []catalog.Intent
	threshold float64
	lev       *strmetrics.Levenshtein
}

// NewMatcher creates a matcher over the given intents. A message matches
// when its best pattern similarity reaches threshold (0-100).
func NewMatcher(intents []catalog.Intent, threshold float64) *Matcher {
	return &Matcher{
		intents:   intents,
		threshold: threshold,
		lev:       strmetrics.NewLevenshtein(),
	}
}

// Match returns the best-scoring intent for the message, or false when
// no pattern reaches the threshold. Scoring tracks the strict maximum,
// so on exact ties the intent listed first wins.
func (m *Matcher) Match(message string) (catalog.Intent, bool) {
	message = strings.ToLower(message)

	bestScore := 0.0
	var best catalog.Intent
	found := false
	for _, intent := range m.intents {
		for _, pattern := range intent.Patterns {
			score := strutil.Similarity(message, strings.ToLower(pattern), m.lev) * 100
			if score > bestScore {
				bestScore = score
				best = intent
				found = true
			}
		}
	}

	if !found || bestScore < m.threshold {
		return catalog.Intent{}, false
	}
	return best, true
}
