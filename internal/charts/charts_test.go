package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanoskov/expenses_bot/internal/model"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func weeklySummary(total float64, byCategory []model.CategorySummary) *model.ExpenseSummary {
	start, _ := model.ParseDate("2026-08-23")
	end, _ := model.ParseDate("2026-08-29")
	return &model.ExpenseSummary{
		Period:     model.PeriodWeekly,
		StartDate:  start,
		EndDate:    end,
		Total:      total,
		ByCategory: byCategory,
	}
}

func TestCategoryPieEmptySummary(t *testing.T) {
	g := NewGenerator()

	// Пустой период — графика нет, вместо него текстовая заглушка
	img, err := g.CategoryPie(weeklySummary(0, []model.CategorySummary{}), "light")
	require.NoError(t, err)
	assert.Nil(t, img)

	img, err = g.CategoryPie(nil, "light")
	require.NoError(t, err)
	assert.Nil(t, img)
}

func TestCategoryPieRendersPNG(t *testing.T) {
	g := NewGenerator()
	summary := weeklySummary(150, []model.CategorySummary{
		{CategoryID: "c1", CategoryName: "Food", Total: 100},
		{CategoryID: "c2", CategoryName: "Transport", Total: 50},
	})

	for _, theme := range []string{"light", "dark"} {
		img, err := g.CategoryPie(summary, theme)
		require.NoError(t, err)
		require.NotNil(t, img)
		assert.Equal(t, pngMagic, img[:4])
	}
}

func TestCategoryPieSkipsNegligibleShares(t *testing.T) {
	g := NewGenerator()
	summary := weeklySummary(1000, []model.CategorySummary{
		{CategoryID: "c1", CategoryName: "Food", Total: 999.50},
		{CategoryID: "c2", CategoryName: "Dust", Total: 0.50},
	})

	img, err := g.CategoryPie(summary, "light")
	require.NoError(t, err)
	assert.NotNil(t, img)
}

func TestAccountBarsRendersPNG(t *testing.T) {
	g := NewGenerator()
	summary := weeklySummary(80, nil)
	summary.ByAccount = []model.AccountSummary{
		{AccountID: "a1", AccountName: "Card", Total: 50},
		{AccountID: "a2", AccountName: "Cash", Total: 30},
	}

	img, err := g.AccountBars(summary, "dark")
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Equal(t, pngMagic, img[:4])
}

func TestAccountBarsEmpty(t *testing.T) {
	g := NewGenerator()
	img, err := g.AccountBars(weeklySummary(0, nil), "light")
	require.NoError(t, err)
	assert.Nil(t, img)
}
