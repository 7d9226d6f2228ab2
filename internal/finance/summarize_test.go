package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanoskov/expenses_bot/internal/model"
)

func TestSummarizeAggregatesRoundsAndSorts(t *testing.T) {
	categories := []model.Category{
		{ID: "c1", Name: "Food"},
		{ID: "c2", Name: "Transport"},
	}
	accounts := []model.Account{
		{ID: "a1", Name: "Card", Type: model.AccountTypeCard},
	}
	expenses := []model.Expense{
		{Amount: 10.11, CategoryID: "c2", AccountID: "a1"},
		{Amount: 20.20, CategoryID: "c1", AccountID: "a1"},
		{Amount: 5.55, CategoryID: "c1", AccountID: "a1"},
	}

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	summary := Summarize(expenses, categories, accounts, model.PeriodMonthly, start, end)

	assert.Equal(t, 35.86, summary.Total)
	require.Len(t, summary.ByCategory, 2)
	// Крупная категория первой
	assert.Equal(t, "Food", summary.ByCategory[0].CategoryName)
	assert.Equal(t, 25.75, summary.ByCategory[0].Total)
	assert.Equal(t, "Transport", summary.ByCategory[1].CategoryName)
	assert.Equal(t, 10.11, summary.ByCategory[1].Total)
	assert.Equal(t, "2024-03-01", summary.StartDate.String())
	assert.Equal(t, "2024-03-31", summary.EndDate.String())
}

func TestSummarizeEmptyPeriod(t *testing.T) {
	start := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	summary := Summarize(nil, nil, nil, model.PeriodWeekly, start, end)

	assert.Zero(t, summary.Total)
	assert.NotNil(t, summary.ByCategory)
	assert.Empty(t, summary.ByCategory)
	assert.NotNil(t, summary.ByAccount)
	assert.Empty(t, summary.ByAccount)
}

func TestPeriodBounds(t *testing.T) {
	// Среда 2026-08-26; неделя начинается с воскресенья
	ref := time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)

	start, end := PeriodBounds(model.PeriodDaily, ref)
	assert.Equal(t, "2026-08-26", start.Format("2006-01-02"))
	assert.Equal(t, "2026-08-26", end.Format("2006-01-02"))

	start, end = PeriodBounds(model.PeriodWeekly, ref)
	assert.Equal(t, "2026-08-23", start.Format("2006-01-02"))
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, "2026-08-26", end.Format("2006-01-02"))

	start, end = PeriodBounds(model.PeriodMonthly, ref)
	assert.Equal(t, "2026-08-01", start.Format("2006-01-02"))
	assert.Equal(t, "2026-08-26", end.Format("2006-01-02"))
}
