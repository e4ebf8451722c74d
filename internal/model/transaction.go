package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SourceType identifies the bank export format a file originates from.
type SourceType string

const (
	SourceING     SourceType = "ing"
	SourceMbank   SourceType = "mbank"
	SourceGeneric SourceType = "generic"
)

// SourceTypes lists every supported source type in scan order.
func SourceTypes() []SourceType {
	return []SourceType{SourceING, SourceMbank, SourceGeneric}
}

// ParseSourceType converts a string into a SourceType.
func ParseSourceType(s string) (SourceType, error) {
	switch SourceType(s) {
	case SourceING, SourceMbank, SourceGeneric:
		return SourceType(s), nil
	}
	return "", fmt.Errorf("unknown source type %q", s)
}

// TransactionType splits transactions by the sign of their amount.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeOutcome TransactionType = "outcome"
)

// RawRecord is one row as produced by a format adapter. All values are raw
// strings in source form; the normalizer converts them.
type RawRecord struct {
	Date        string
	Contractor  string
	Title       string
	NativeID    string // empty when the source carries no transaction id
	Amount      string
	AccountName string
}

// Transaction is the canonical record every source format normalizes into.
// CategoryRuleID is nil when the fallback produced the category.
type Transaction struct {
	ID             string
	Date           time.Time
	Contractor     string
	Title          string
	Amount         decimal.Decimal
	AmountAbs      decimal.Decimal
	Type           TransactionType
	AccountName    string
	SourceFilePath string
	SourceType     SourceType

	// Display/bucketing helpers, computed once at normalization.
	DateDay   string // 2006-01-02
	DateMonth string // 2006-01
	DateYear  string // 2006

	Category       string
	CategoryRuleID *int
}
