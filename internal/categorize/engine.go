// Package categorize assigns categories to transactions from an ordered
// rule set, backed by a fingerprint-guarded cache.
package categorize

import (
	"github.com/pawelciurka/money-insights/internal/model"
	"github.com/pawelciurka/money-insights/internal/rules"
)

// Categorize evaluates rules in order and returns the first matching rule's
// category and id. A fallback match, or no match at all, yields a nil rule
// id and the reserved unrecognized label.
func Categorize(t model.Transaction, ruleList []rules.CategoryRule) (string, *int) {
	for _, r := range ruleList {
		if !r.Matches(t) {
			continue
		}
		if r.Fallback {
			return r.Category, nil
		}
		id := r.ID
		return r.Category, &id
	}
	return rules.FallbackCategory, nil
}
