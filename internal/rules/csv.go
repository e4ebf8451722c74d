package rules

import (
	"bytes"
	"crypto/md5"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pawelciurka/money-insights/internal/model"
)

// Header is the CSV header of the rule definition file.
const Header = "rule_id,column,relation,value,category"

const (
	numFields   = 5
	colRuleID   = 0
	colColumn   = 1
	colRelation = 2
	colValue    = 3
	colCategory = 4
)

// ConsistencyError reports a rule id whose condition rows disagree on the
// category.
type ConsistencyError struct {
	RuleID     int
	Categories []string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("rule %d maps to multiple categories: %s", e.RuleID, strings.Join(e.Categories, ", "))
}

// Load reads the rule definition file. Rows sharing a rule_id are grouped
// into one rule in first-seen id order. The fingerprint covers the raw file
// bytes, so any byte-level edit invalidates caches built against it. When
// addFallback is set, the synthetic always-matching fallback rule is
// appended last.
func Load(path string, addFallback bool) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	sum := md5.Sum(data)
	set := &RuleSet{Fingerprint: hex.EncodeToString(sum[:])}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading rules CSV: %w", err)
	}

	indexByID := make(map[int]int)
	for i, rec := range records {
		if i == 0 {
			// Header row.
			continue
		}

		ruleID, err := strconv.Atoi(rec[colRuleID])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing rule_id %q: %w", i+1, rec[colRuleID], err)
		}
		column, err := model.ParseColumn(rec[colColumn])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		relation, err := ParseRelation(rec[colRelation])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		cond := Condition{Column: column, Relation: relation, Value: rec[colValue]}
		category := rec[colCategory]

		if idx, ok := indexByID[ruleID]; ok {
			if set.Rules[idx].Category != category {
				return nil, &ConsistencyError{
					RuleID:     ruleID,
					Categories: []string{set.Rules[idx].Category, category},
				}
			}
			set.Rules[idx].Conditions = append(set.Rules[idx].Conditions, cond)
			continue
		}

		indexByID[ruleID] = len(set.Rules)
		set.Rules = append(set.Rules, CategoryRule{
			ID:         ruleID,
			Category:   category,
			Conditions: []Condition{cond},
		})
	}

	if addFallback {
		set.Rules = append(set.Rules, fallbackRule())
	}
	return set, nil
}

// Save rewrites the rule definition file atomically. The synthetic fallback
// is never persisted; it is re-added at next load. All non-numeric fields
// are quoted so user-authored literals survive a reload unambiguously.
func Save(path string, ruleSet []CategoryRule) error {
	var buf bytes.Buffer
	buf.WriteString(Header + "\n")

	for _, r := range ruleSet {
		if r.Fallback {
			continue
		}
		for _, c := range r.Conditions {
			fmt.Fprintf(&buf, "%d,%s,%s,%s,%s\n",
				r.ID, quote(string(c.Column)), quote(string(c.Relation)), quote(c.Value), quote(r.Category))
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".rules-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp rules file: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing rules: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing rules file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing rules file: %w", err)
	}
	return nil
}

// AddRule appends a new single-condition rule with id max+1 and persists
// the full set. This is the only mutation entry point into the rule store.
func AddRule(path string, column model.Column, relation Relation, value, category string) error {
	set, err := Load(path, false)
	if err != nil {
		return err
	}

	maxID := 0
	for _, r := range set.Rules {
		if r.ID > maxID {
			maxID = r.ID
		}
	}

	set.Rules = append(set.Rules, CategoryRule{
		ID:         maxID + 1,
		Category:   category,
		Conditions: []Condition{{Column: column, Relation: relation, Value: value}},
	})
	return Save(path, set.Rules)
}

// quote wraps a field in CSV double quotes, escaping embedded quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
