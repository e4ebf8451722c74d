package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pawelciurka/money-insights/internal/model"
)

// INGParser parses ING transaction-list CSV exports (Windows-1250,
// semicolon-separated, free-text banner above the column header and a legal
// disclaimer below the body).
type INGParser struct{}

const (
	ingHeaderMarker = `"Data transakcji"`
	ingFooterMarker = `"Dokument ma charakter informacyjny`

	ingColDate       = 0
	ingColContractor = 2
	ingColTitle      = 3
	ingColID         = 7
	ingColAmount     = 8
	ingColAccount    = 14
	ingNumFields     = 15
)

var ingColumns = map[int]model.Column{
	ingColDate:       model.ColumnTransactionDate,
	ingColContractor: model.ColumnContractor,
	ingColTitle:      model.ColumnTitle,
	ingColID:         model.ColumnTransactionID,
	ingColAmount:     model.ColumnAmount,
	ingColAccount:    model.ColumnAccountName,
}

// SourceType returns the parser's source type tag.
func (p *INGParser) SourceType() model.SourceType { return model.SourceING }

// ParseRaw reads an ING export and returns its body rows as raw records.
func (p *INGParser) ParseRaw(r io.Reader) ([]model.RawRecord, error) {
	lines, err := decodeLines(r)
	if err != nil {
		return nil, fmt.Errorf("decoding ing export: %w", err)
	}

	body, err := truncateHeader(lines, ingHeaderMarker, model.SourceING)
	if err != nil {
		return nil, err
	}
	body, err = truncateFooter(body, func(line string) bool {
		return strings.HasPrefix(line, ingFooterMarker)
	}, model.SourceING)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(strings.NewReader(strings.Join(body, "\n")))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ing CSV body: %w", err)
	}

	var records []model.RawRecord
	for _, row := range rows {
		if missing := missingColumns(row, ingColumns); len(missing) > 0 {
			return nil, &FormatError{SourceType: model.SourceING, MissingFields: missing}
		}
		records = append(records, model.RawRecord{
			Date:        row[ingColDate],
			Contractor:  row[ingColContractor],
			Title:       row[ingColTitle],
			NativeID:    row[ingColID],
			Amount:      row[ingColAmount],
			AccountName: row[ingColAccount],
		})
	}
	return records, nil
}

// missingColumns names the fixed-position columns a short row cannot supply.
func missingColumns(row []string, cols map[int]model.Column) []string {
	var missing []string
	for idx, name := range cols {
		if idx >= len(row) {
			missing = append(missing, string(name))
		}
	}
	sort.Strings(missing)
	return missing
}
