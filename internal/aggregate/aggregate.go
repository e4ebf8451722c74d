// Package aggregate provides the grouping helpers consumers apply to the
// canonical transaction table: date-range and category filters, top-N
// grouping with an "other" bucket, and time-bucketed sums.
package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pawelciurka/money-insights/internal/model"
)

// Frequency selects the time-bucket granularity.
type Frequency string

const (
	Daily   Frequency = "day"
	Monthly Frequency = "month"
	Yearly  Frequency = "year"
)

// OtherGroup labels transactions outside the top-N groups.
const OtherGroup = "other"

// Bucket returns the transaction's precomputed bucket key at the given
// granularity.
func Bucket(t model.Transaction, f Frequency) string {
	switch f {
	case Daily:
		return t.DateDay
	case Yearly:
		return t.DateYear
	}
	return t.DateMonth
}

// FilterDateRange returns transactions dated within [start, end].
func FilterDateRange(txns []model.Transaction, start, end time.Time) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FilterCategories returns transactions whose category is in categories.
func FilterCategories(txns []model.Transaction, categories []string) []model.Transaction {
	allowed := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		allowed[c] = struct{}{}
	}
	var out []model.Transaction
	for _, t := range txns {
		if _, ok := allowed[t.Category]; ok {
			out = append(out, t)
		}
	}
	return out
}

// TopGroups returns the n values of the grouping column with the largest
// total absolute amount.
func TopGroups(txns []model.Transaction, groupBy model.Column, n int) map[string]struct{} {
	totals := make(map[string]decimal.Decimal)
	for _, t := range txns {
		g := t.Field(groupBy)
		totals[g] = totals[g].Add(t.AmountAbs)
	}

	type groupTotal struct {
		group string
		total decimal.Decimal
	}
	ranked := make([]groupTotal, 0, len(totals))
	for g, total := range totals {
		ranked = append(ranked, groupTotal{g, total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].total.Equal(ranked[j].total) {
			return ranked[i].total.GreaterThan(ranked[j].total)
		}
		return ranked[i].group < ranked[j].group
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	top := make(map[string]struct{}, n)
	for _, gt := range ranked[:n] {
		top[gt.group] = struct{}{}
	}
	return top
}

// GroupLabel maps a transaction to its grouping value, or OtherGroup when
// the value is not among the significant ones.
func GroupLabel(t model.Transaction, groupBy model.Column, significant map[string]struct{}) string {
	g := t.Field(groupBy)
	if _, ok := significant[g]; ok {
		return g
	}
	return OtherGroup
}

// SumByGroupAndBucket sums absolute amounts per group label and time
// bucket: result[group][bucket].
func SumByGroupAndBucket(txns []model.Transaction, groupBy model.Column, n int, f Frequency) map[string]map[string]decimal.Decimal {
	significant := TopGroups(txns, groupBy, n)

	out := make(map[string]map[string]decimal.Decimal)
	for _, t := range txns {
		label := GroupLabel(t, groupBy, significant)
		if out[label] == nil {
			out[label] = make(map[string]decimal.Decimal)
		}
		b := Bucket(t, f)
		out[label][b] = out[label][b].Add(t.AmountAbs)
	}
	return out
}

// PeriodSummary is income, expense and their delta for one time bucket.
type PeriodSummary struct {
	Bucket  string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Delta   decimal.Decimal
}

// SummarizeByBucket computes per-bucket income/expense/delta, sorted by
// bucket key.
func SummarizeByBucket(txns []model.Transaction, f Frequency) []PeriodSummary {
	byBucket := make(map[string]*PeriodSummary)
	for _, t := range txns {
		b := Bucket(t, f)
		s, ok := byBucket[b]
		if !ok {
			s = &PeriodSummary{Bucket: b}
			byBucket[b] = s
		}
		if t.Type == model.TypeIncome {
			s.Income = s.Income.Add(t.AmountAbs)
		} else {
			s.Expense = s.Expense.Add(t.AmountAbs)
		}
	}

	out := make([]PeriodSummary, 0, len(byBucket))
	for _, s := range byBucket {
		s.Delta = s.Income.Sub(s.Expense)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Bucket < out[j].Bucket })
	return out
}
