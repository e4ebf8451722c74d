package categorize

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pawelciurka/money-insights/internal/model"
)

// cacheHeader is the CSV header of the cache file. The first line of the
// file is a comment carrying the rule-set fingerprint the entries were
// computed against.
const cacheHeader = "transaction_id,category,category_rule_id"

const fingerprintPrefix = "#rules_md5="

const (
	cacheNumFields = 3
	cacheColID     = 0
	cacheColCat    = 1
	cacheColRuleID = 2
)

// Entry is one cached category assignment. RuleID is nil when the fallback
// produced the category.
type Entry struct {
	Category string
	RuleID   *int
}

// Cache persists transaction-id to category assignments keyed by the
// rule-set fingerprint that produced them. It is an all-or-nothing
// per-ruleset artifact: a fingerprint mismatch invalidates it wholesale.
type Cache struct {
	path        string
	fingerprint string
	entries     map[string]Entry
}

// NewCache creates an empty cache backed by the given file path.
func NewCache(path string) *Cache {
	return &Cache{path: path, entries: make(map[string]Entry)}
}

// Read loads the persisted cache. Any read or parse failure leaves the
// cache empty: a missing or corrupt cache is a cold start, not an error.
func (c *Cache) Read() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return
	}

	var fingerprint string
	if line, rest, found := bytes.Cut(data, []byte("\n")); found &&
		bytes.HasPrefix(line, []byte(fingerprintPrefix)) {
		fingerprint = strings.TrimSpace(strings.TrimPrefix(string(line), fingerprintPrefix))
		data = rest
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = cacheNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return
	}

	entries := make(map[string]Entry, len(records))
	for i, rec := range records {
		if i == 0 {
			// Header row.
			continue
		}
		e := Entry{Category: rec[cacheColCat]}
		if rec[cacheColRuleID] != "" {
			id, err := strconv.Atoi(rec[cacheColRuleID])
			if err != nil {
				return
			}
			e.RuleID = &id
		}
		entries[rec[cacheColID]] = e
	}

	c.fingerprint = fingerprint
	c.entries = entries
}

// IsEmpty reports whether the cache holds no entries.
func (c *Cache) IsEmpty() bool {
	return len(c.entries) == 0
}

// Fingerprint returns the rule-set fingerprint the cache was written with.
func (c *Cache) Fingerprint() string {
	return c.fingerprint
}

// Lookup returns the cached assignment for a transaction id.
func (c *Cache) Lookup(transactionID string) (Entry, bool) {
	e, ok := c.entries[transactionID]
	return e, ok
}

// Write persists the full id-to-category mapping for the given transactions
// together with the rule-set fingerprint, overwriting the store wholesale.
func (c *Cache) Write(txns []model.Transaction, fingerprint string) error {
	entries := make(map[string]Entry, len(txns))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s%s\n", fingerprintPrefix, fingerprint)
	buf.WriteString(cacheHeader + "\n")

	cw := csv.NewWriter(&buf)
	for _, t := range txns {
		ruleID := ""
		if t.CategoryRuleID != nil {
			ruleID = strconv.Itoa(*t.CategoryRuleID)
		}
		if err := cw.Write([]string{t.ID, t.Category, ruleID}); err != nil {
			return fmt.Errorf("writing cache row: %w", err)
		}
		entries[t.ID] = Entry{Category: t.Category, RuleID: t.CategoryRuleID}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}
	if err := os.WriteFile(c.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}

	c.fingerprint = fingerprint
	c.entries = entries
	return nil
}
