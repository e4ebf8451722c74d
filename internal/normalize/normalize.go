// Package normalize converts raw adapter output into canonical transactions.
package normalize

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pawelciurka/money-insights/internal/model"
)

// DefaultDateOffset is added to every parsed transaction date so that
// transactions do not collide exactly at midnight boundaries when sorted or
// bucketed downstream. Kept configurable for compatibility with data
// produced by earlier runs.
const DefaultDateOffset = time.Minute

// Options controls normalization behavior.
type Options struct {
	// DateOffset is added to each parsed transaction date.
	DateOffset time.Duration
}

// DefaultOptions returns the options historical data was produced with.
func DefaultOptions() Options {
	return Options{DateOffset: DefaultDateOffset}
}

// dateLayouts are the export date formats seen across sources.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02.01.2006",
	"02-01-2006",
	"02/01/2006",
}

// amountCleaner strips the currency token, thousands separators (plain and
// non-breaking spaces) and converts the comma decimal separator.
var amountCleaner = strings.NewReplacer("PLN", "", " ", "", " ", "", ",", ".")

// Normalize converts raw records from one source file into canonical
// transactions. Rows whose amount does not parse are dropped: exports are
// known to carry trailing commentary rows that are not transactions.
func Normalize(records []model.RawRecord, sourceFilePath string, st model.SourceType, opts Options) ([]model.Transaction, error) {
	var txns []model.Transaction
	for _, rec := range records {
		amount, err := ParseAmount(rec.Amount)
		if err != nil {
			continue
		}

		date, err := ParseDate(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("row in %s: %w", sourceFilePath, err)
		}
		date = date.Add(opts.DateOffset)

		id := rec.NativeID
		if id == "" {
			id = SynthesizeID(rec)
		}

		txnType := model.TypeIncome
		if amount.IsNegative() {
			txnType = model.TypeOutcome
		}

		txns = append(txns, model.Transaction{
			ID:             id,
			Date:           date,
			Contractor:     rec.Contractor,
			Title:          rec.Title,
			Amount:         amount,
			AmountAbs:      amount.Abs(),
			Type:           txnType,
			AccountName:    rec.AccountName,
			SourceFilePath: sourceFilePath,
			SourceType:     st,
			DateDay:        date.Format("2006-01-02"),
			DateMonth:      date.Format("2006-01"),
			DateYear:       date.Format("2006"),
		})
	}
	return txns, nil
}

// ParseAmount converts a raw export amount like "1 234,00 PLN" into a
// decimal value.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(amountCleaner.Replace(raw))
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount %q", raw)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	return d, nil
}

// ParseDate parses a raw export date in any of the known layouts.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// SynthesizeID derives a deterministic transaction id for sources without a
// native one: SHA-256 over the row's raw field values, hex encoded. Reruns
// over the same file yield identical ids.
func SynthesizeID(rec model.RawRecord) string {
	h := sha256.New()
	for _, v := range []string{rec.Date, rec.Title, rec.Contractor, rec.Amount} {
		h.Write([]byte(v))
	}
	return hex.EncodeToString(h.Sum(nil))
}
