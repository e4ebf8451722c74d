package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumn(t *testing.T) {
	for _, c := range Columns() {
		got, err := ParseColumn(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseColumn("amount_abs")
	assert.Error(t, err, "derived fields are not rule-addressable")
}

func TestTransaction_Field(t *testing.T) {
	txn := Transaction{
		ID:             "abc",
		Date:           time.Date(2023, 1, 2, 0, 1, 0, 0, time.UTC),
		Contractor:     "ZABKA K.15",
		Title:          "Zakup BLIK",
		Amount:         decimal.RequireFromString("-12.5"),
		AccountName:    "konto",
		SourceFilePath: "/in/ing/f.csv",
		SourceType:     SourceING,
	}

	assert.Equal(t, "2023-01-02 00:01:00", txn.Field(ColumnTransactionDate))
	assert.Equal(t, "ZABKA K.15", txn.Field(ColumnContractor))
	assert.Equal(t, "Zakup BLIK", txn.Field(ColumnTitle))
	assert.Equal(t, "abc", txn.Field(ColumnTransactionID))
	assert.Equal(t, "-12.5", txn.Field(ColumnAmount))
	assert.Equal(t, "konto", txn.Field(ColumnAccountName))
	assert.Equal(t, "/in/ing/f.csv", txn.Field(ColumnSourceFilePath))
	assert.Equal(t, "ing", txn.Field(ColumnSourceType))
}

func TestParseSourceType(t *testing.T) {
	for _, st := range SourceTypes() {
		got, err := ParseSourceType(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	_, err := ParseSourceType("revolut")
	assert.Error(t, err)
}
