package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawelciurka/money-insights/internal/model"
)

func txn(id, day, contractor, category, amount string) model.Transaction {
	d := decimal.RequireFromString(amount)
	date, _ := time.Parse("2006-01-02", day)
	tt := model.TypeIncome
	if d.IsNegative() {
		tt = model.TypeOutcome
	}
	return model.Transaction{
		ID:         id,
		Date:       date,
		Contractor: contractor,
		Category:   category,
		Amount:     d,
		AmountAbs:  d.Abs(),
		Type:       tt,
		DateDay:    date.Format("2006-01-02"),
		DateMonth:  date.Format("2006-01"),
		DateYear:   date.Format("2006"),
	}
}

func TestFilterDateRange(t *testing.T) {
	txns := []model.Transaction{
		txn("1", "2023-01-05", "A", "x", "-1"),
		txn("2", "2023-02-05", "B", "x", "-1"),
		txn("3", "2023-03-05", "C", "x", "-1"),
	}

	start := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)

	got := FilterDateRange(txns, start, end)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilterCategories(t *testing.T) {
	txns := []model.Transaction{
		txn("1", "2023-01-05", "A", "groceries", "-1"),
		txn("2", "2023-01-06", "B", "rent", "-1"),
		txn("3", "2023-01-07", "C", "unrecognized", "-1"),
	}

	got := FilterCategories(txns, []string{"groceries", "rent"})
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestTopGroups(t *testing.T) {
	txns := []model.Transaction{
		txn("1", "2023-01-05", "BIG", "x", "-100"),
		txn("2", "2023-01-06", "BIG", "x", "-100"),
		txn("3", "2023-01-07", "MID", "x", "150"),
		txn("4", "2023-01-08", "SMALL", "x", "-10"),
	}

	top := TopGroups(txns, model.ColumnContractor, 2)
	assert.Len(t, top, 2)
	assert.Contains(t, top, "BIG")
	assert.Contains(t, top, "MID")
	assert.NotContains(t, top, "SMALL")
}

func TestGroupLabel_FoldsIntoOther(t *testing.T) {
	significant := map[string]struct{}{"BIG": {}}

	assert.Equal(t, "BIG", GroupLabel(txn("1", "2023-01-05", "BIG", "x", "-1"), model.ColumnContractor, significant))
	assert.Equal(t, OtherGroup, GroupLabel(txn("2", "2023-01-05", "SMALL", "x", "-1"), model.ColumnContractor, significant))
}

func TestSumByGroupAndBucket(t *testing.T) {
	txns := []model.Transaction{
		txn("1", "2023-01-05", "BIG", "x", "-100"),
		txn("2", "2023-01-20", "BIG", "x", "-50"),
		txn("3", "2023-02-05", "BIG", "x", "-25"),
		txn("4", "2023-01-05", "SMALL", "x", "-10"),
	}

	sums := SumByGroupAndBucket(txns, model.ColumnContractor, 1, Monthly)

	require.Contains(t, sums, "BIG")
	require.Contains(t, sums, OtherGroup)
	assert.Equal(t, "150", sums["BIG"]["2023-01"].String())
	assert.Equal(t, "25", sums["BIG"]["2023-02"].String())
	assert.Equal(t, "10", sums[OtherGroup]["2023-01"].String())
}

func TestSummarizeByBucket(t *testing.T) {
	txns := []model.Transaction{
		txn("1", "2023-01-05", "EMPLOYER", "salary", "1000"),
		txn("2", "2023-01-20", "SHOP", "groceries", "-300"),
		txn("3", "2023-02-05", "SHOP", "groceries", "-25"),
	}

	summaries := SummarizeByBucket(txns, Monthly)
	require.Len(t, summaries, 2)

	jan := summaries[0]
	assert.Equal(t, "2023-01", jan.Bucket)
	assert.Equal(t, "1000", jan.Income.String())
	assert.Equal(t, "300", jan.Expense.String())
	assert.Equal(t, "700", jan.Delta.String())

	feb := summaries[1]
	assert.Equal(t, "2023-02", feb.Bucket)
	assert.Equal(t, "-25", feb.Delta.String())
}

func TestBucket(t *testing.T) {
	tr := txn("1", "2023-01-05", "A", "x", "-1")
	assert.Equal(t, "2023-01-05", Bucket(tr, Daily))
	assert.Equal(t, "2023-01", Bucket(tr, Monthly))
	assert.Equal(t, "2023", Bucket(tr, Yearly))
}
