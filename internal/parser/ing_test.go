package parser

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawelciurka/money-insights/internal/model"
)

func TestINGParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../testdata/ing/Lista_transakcji_example_ING_1.csv")
	require.NoError(t, err)

	p := &INGParser{}
	records, err := p.ParseRaw(strings.NewReader(string(data)))
	require.NoError(t, err)
	// Two transactions plus the summary row the normalizer later drops.
	require.Len(t, records, 3)

	assert.Equal(t, "2023-01-02", records[0].Date)
	assert.Equal(t, "ZABKA K.15 WARSZAWA", records[0].Contractor)
	assert.Equal(t, "Zakup BLIK 123", records[0].Title)
	assert.Equal(t, "202301020001", records[0].NativeID)
	assert.Equal(t, "-12,50", records[0].Amount)
	assert.Equal(t, "Konto Osobiste", records[0].AccountName)

	assert.Equal(t, "1 234,00 PLN", records[1].Amount)
	assert.Equal(t, "202301150002", records[1].NativeID)
}

func TestINGParser_Transliterates(t *testing.T) {
	data, err := os.ReadFile("../../testdata/ing/Lista_transakcji_example_ING_1.csv")
	require.NoError(t, err)

	p := &INGParser{}
	records, err := p.ParseRaw(strings.NewReader(string(data)))
	require.NoError(t, err)

	// The export says "Wynagrodzenie za styczeń" in Windows-1250.
	assert.Equal(t, "Wynagrodzenie za styczen", records[1].Title)
}

func TestINGParser_MissingHeaderMarker(t *testing.T) {
	p := &INGParser{}
	_, err := p.ParseRaw(strings.NewReader("just;some;lines\nwithout;the;marker\n"))
	require.Error(t, err)

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, model.SourceING, ferr.SourceType)
	assert.Contains(t, ferr.Error(), "header marker")
}

func TestINGParser_MissingFooterMarker(t *testing.T) {
	input := ingHeaderMarker + ";\"Kwota\"\n" +
		`"2023-01-02";"";"A";"B";"";"";"";"1";"-1,00";"";"";"";"";"";"konto"` + "\n"

	p := &INGParser{}
	_, err := p.ParseRaw(strings.NewReader(input))
	require.Error(t, err)

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Error(), "footer marker")
}

func TestINGParser_ShortRowReportsMissingFields(t *testing.T) {
	input := ingHeaderMarker + ";\"Kwota\"\n" +
		`"2023-01-02";"";"A"` + "\n" +
		ingFooterMarker + "\"\n"

	p := &INGParser{}
	_, err := p.ParseRaw(strings.NewReader(input))
	require.Error(t, err)

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.MissingFields, "amount")
	assert.Contains(t, ferr.MissingFields, "account_name")
	assert.Contains(t, ferr.MissingFields, "transaction_id")
}

func TestINGParser_SourceType(t *testing.T) {
	p := &INGParser{}
	assert.Equal(t, model.SourceING, p.SourceType())
}
