package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/pawelciurka/money-insights/internal/model"
)

// GenericParser parses plain comma-separated files that already use the
// canonical column names in a header row. Extra columns are ignored; every
// mandatory canonical column must be present.
type GenericParser struct{}

var genericMandatory = []model.Column{
	model.ColumnTransactionDate,
	model.ColumnContractor,
	model.ColumnTitle,
	model.ColumnTransactionID,
	model.ColumnAmount,
	model.ColumnAccountName,
}

// SourceType returns the parser's source type tag.
func (p *GenericParser) SourceType() model.SourceType { return model.SourceGeneric }

// ParseRaw reads a canonical-format CSV and returns its rows as raw records.
func (p *GenericParser) ParseRaw(r io.Reader) ([]model.RawRecord, error) {
	cr := csv.NewReader(r)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading generic CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, &FormatError{SourceType: model.SourceGeneric, Reason: "empty file"}
	}

	index := make(map[model.Column]int)
	for i, name := range rows[0] {
		if col, err := model.ParseColumn(name); err == nil {
			index[col] = i
		}
	}

	var missing []string
	for _, col := range genericMandatory {
		if _, ok := index[col]; !ok {
			missing = append(missing, string(col))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &FormatError{SourceType: model.SourceGeneric, MissingFields: missing}
	}

	var records []model.RawRecord
	for _, row := range rows[1:] {
		records = append(records, model.RawRecord{
			Date:        row[index[model.ColumnTransactionDate]],
			Contractor:  row[index[model.ColumnContractor]],
			Title:       row[index[model.ColumnTitle]],
			NativeID:    row[index[model.ColumnTransactionID]],
			Amount:      row[index[model.ColumnAmount]],
			AccountName: row[index[model.ColumnAccountName]],
		})
	}
	return records, nil
}
