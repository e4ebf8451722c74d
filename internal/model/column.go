package model

import "fmt"

// Column names a Transaction field addressable by category rules. Keeping
// this a closed enum means a rule referencing an invalid field fails at
// parse time instead of silently never matching.
type Column string

const (
	ColumnTransactionDate Column = "transaction_date"
	ColumnContractor      Column = "contractor"
	ColumnTitle           Column = "title"
	ColumnTransactionID   Column = "transaction_id"
	ColumnAmount          Column = "amount"
	ColumnAccountName     Column = "account_name"
	ColumnSourceFilePath  Column = "source_file_path"
	ColumnSourceType      Column = "source_type"
)

// Columns lists every rule-addressable transaction column.
func Columns() []Column {
	return []Column{
		ColumnTransactionDate,
		ColumnContractor,
		ColumnTitle,
		ColumnTransactionID,
		ColumnAmount,
		ColumnAccountName,
		ColumnSourceFilePath,
		ColumnSourceType,
	}
}

// ParseColumn converts a string into a Column.
func ParseColumn(s string) (Column, error) {
	for _, c := range Columns() {
		if Column(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown transaction column %q", s)
}

// Field returns the string form of the column's value on t. Rules are
// authored against literal bank text, so no case or whitespace
// normalization happens here.
func (t Transaction) Field(c Column) string {
	switch c {
	case ColumnTransactionDate:
		return t.Date.Format("2006-01-02 15:04:05")
	case ColumnContractor:
		return t.Contractor
	case ColumnTitle:
		return t.Title
	case ColumnTransactionID:
		return t.ID
	case ColumnAmount:
		return t.Amount.String()
	case ColumnAccountName:
		return t.AccountName
	case ColumnSourceFilePath:
		return t.SourceFilePath
	case ColumnSourceType:
		return string(t.SourceType)
	}
	return ""
}
