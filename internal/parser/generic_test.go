package parser

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawelciurka/money-insights/internal/model"
)

func TestGenericParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../testdata/generic/transactions_example_1.csv")
	require.NoError(t, err)

	p := &GenericParser{}
	records, err := p.ParseRaw(strings.NewReader(string(data)))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "2023-03-01 00:00:00", records[0].Date)
	assert.Equal(t, "LANDLORD", records[0].Contractor)
	assert.Equal(t, "March rent", records[0].Title)
	assert.Equal(t, "gen-0001", records[0].NativeID)
	assert.Equal(t, "-2000.00", records[0].Amount)
	assert.Equal(t, "cash", records[0].AccountName)
}

func TestGenericParser_ColumnOrderIrrelevant(t *testing.T) {
	input := "amount,transaction_id,account_name,title,contractor,transaction_date\n" +
		"-5.00,x1,cash,coffee,CAFE,2023-03-01\n"

	p := &GenericParser{}
	records, err := p.ParseRaw(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "-5.00", records[0].Amount)
	assert.Equal(t, "CAFE", records[0].Contractor)
}

func TestGenericParser_MissingMandatoryColumns(t *testing.T) {
	input := "transaction_date,title,amount\n2023-03-01,coffee,-5.00\n"

	p := &GenericParser{}
	_, err := p.ParseRaw(strings.NewReader(input))
	require.Error(t, err)

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, model.SourceGeneric, ferr.SourceType)
	assert.Equal(t, []string{"account_name", "contractor", "transaction_id"}, ferr.MissingFields)
}

func TestGenericParser_EmptyFile(t *testing.T) {
	p := &GenericParser{}
	_, err := p.ParseRaw(strings.NewReader(""))
	require.Error(t, err)

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Error(), "empty file")
}

func TestGenericParser_SourceType(t *testing.T) {
	p := &GenericParser{}
	assert.Equal(t, model.SourceGeneric, p.SourceType())
}
