package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pawelciurka/money-insights/internal/model"
)

// MbankParser parses mBank operation-history CSV exports (Windows-1250,
// semicolon-separated). The export carries no transaction id column; the
// normalizer synthesizes one from the row content.
type MbankParser struct{}

const (
	mbankHeaderMarker = "#Data ksiegowania"
	mbankFooterMarker = "#Saldo"
	mbankAccountName  = "mbank"

	mbankColDate       = 0
	mbankColTitle      = 3
	mbankColContractor = 4
	mbankColAmount     = 6
)

var mbankColumns = map[int]model.Column{
	mbankColDate:       model.ColumnTransactionDate,
	mbankColTitle:      model.ColumnTitle,
	mbankColContractor: model.ColumnContractor,
	mbankColAmount:     model.ColumnAmount,
}

// SourceType returns the parser's source type tag.
func (p *MbankParser) SourceType() model.SourceType { return model.SourceMbank }

// ParseRaw reads an mBank export and returns its body rows as raw records.
func (p *MbankParser) ParseRaw(r io.Reader) ([]model.RawRecord, error) {
	lines, err := decodeLines(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mbank export: %w", err)
	}

	body, err := truncateHeader(lines, mbankHeaderMarker, model.SourceMbank)
	if err != nil {
		return nil, err
	}
	body, err = truncateFooter(body, func(line string) bool {
		return strings.Contains(line, mbankFooterMarker)
	}, model.SourceMbank)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(strings.NewReader(strings.Join(body, "\n")))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading mbank CSV body: %w", err)
	}

	var records []model.RawRecord
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if missing := missingColumns(row, mbankColumns); len(missing) > 0 {
			return nil, &FormatError{SourceType: model.SourceMbank, MissingFields: missing}
		}
		records = append(records, model.RawRecord{
			Date:        row[mbankColDate],
			Title:       row[mbankColTitle],
			Contractor:  row[mbankColContractor],
			Amount:      row[mbankColAmount],
			AccountName: mbankAccountName,
		})
	}
	return records, nil
}

func isBlankRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
