// Package rules loads and persists the user-editable category rule set.
package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pawelciurka/money-insights/internal/model"
)

// FallbackCategory is the reserved label assigned when no explicit rule
// matches a transaction.
const FallbackCategory = "unrecognized"

// Relation is how a condition compares a rule literal to a field value.
type Relation string

const (
	RelationEquals   Relation = "equals"
	RelationContains Relation = "contains"
)

// ParseRelation converts a string into a Relation.
func ParseRelation(s string) (Relation, error) {
	switch Relation(s) {
	case RelationEquals, RelationContains:
		return Relation(s), nil
	}
	return "", fmt.Errorf("unknown relation %q", s)
}

// Condition compares one transaction column against a literal. Comparisons
// are case-sensitive and exact: rules are authored against literal bank
// text.
type Condition struct {
	Column   model.Column
	Relation Relation
	Value    string
}

// Evaluate reports whether the condition holds for the given field value.
func (c Condition) Evaluate(fieldValue string) bool {
	switch c.Relation {
	case RelationEquals:
		return fieldValue == c.Value
	case RelationContains:
		return strings.Contains(fieldValue, c.Value)
	}
	return false
}

// CategoryRule assigns a category to transactions matching ALL of its
// conditions. Fallback marks the synthetic always-matching rule appended at
// load time; it has no persisted id.
type CategoryRule struct {
	ID         int
	Category   string
	Conditions []Condition
	Fallback   bool
}

// Matches reports whether every condition of the rule holds for t.
func (r CategoryRule) Matches(t model.Transaction) bool {
	for _, c := range r.Conditions {
		if !c.Evaluate(t.Field(c.Column)) {
			return false
		}
	}
	return true
}

// RuleSet is the ordered rule list plus the fingerprint of the backing
// file's raw bytes. Evaluation order is list order; first match wins.
type RuleSet struct {
	Rules       []CategoryRule
	Fingerprint string
}

// Categories returns the sorted distinct category vocabulary of the set,
// including the fallback label when a fallback rule is present.
func (s *RuleSet) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range s.Rules {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	sort.Strings(out)
	return out
}

// fallbackRule returns the synthetic always-matching rule evaluated last.
func fallbackRule() CategoryRule {
	return CategoryRule{
		Category: FallbackCategory,
		Conditions: []Condition{
			{Column: model.ColumnTitle, Relation: RelationContains, Value: ""},
		},
		Fallback: true,
	}
}
