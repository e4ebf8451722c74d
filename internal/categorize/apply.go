package categorize

import (
	"fmt"

	"github.com/pawelciurka/money-insights/internal/model"
	"github.com/pawelciurka/money-insights/internal/rules"
)

// Stats reports cache effectiveness for one categorization pass.
type Stats struct {
	Recomputed int
	FromCache  int
}

// Apply assigns a category to every transaction in place and rewrites the
// cache afterwards. When the cache's fingerprint matches the rule set's,
// cached assignments are reused and only unseen transactions are
// recomputed; otherwise every transaction is recomputed.
func Apply(txns []model.Transaction, set *rules.RuleSet, cache *Cache) (Stats, error) {
	valid := !cache.IsEmpty() && cache.Fingerprint() == set.Fingerprint

	var stats Stats
	for i := range txns {
		if valid {
			if e, ok := cache.Lookup(txns[i].ID); ok {
				txns[i].Category = e.Category
				txns[i].CategoryRuleID = e.RuleID
				stats.FromCache++
				continue
			}
		}
		category, ruleID := Categorize(txns[i], set.Rules)
		txns[i].Category = category
		txns[i].CategoryRuleID = ruleID
		stats.Recomputed++
	}

	if err := cache.Write(txns, set.Fingerprint); err != nil {
		return stats, fmt.Errorf("persisting categories cache: %w", err)
	}
	return stats, nil
}
