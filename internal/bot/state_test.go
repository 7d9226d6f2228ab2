package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpenseInput(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("сумма и описание", func(t *testing.T) {
		amount, date, description, err := parseExpenseInput("250.50 обед с коллегами", now)
		require.NoError(t, err)
		assert.Equal(t, 250.50, amount)
		assert.Equal(t, "2026-08-31", date.String())
		require.NotNil(t, description)
		assert.Equal(t, "обед с коллегами", *description)
	})

	t.Run("только сумма", func(t *testing.T) {
		amount, date, description, err := parseExpenseInput("99", now)
		require.NoError(t, err)
		assert.Equal(t, 99.0, amount)
		assert.Equal(t, "2026-08-31", date.String())
		assert.Nil(t, description)
	})

	t.Run("запятая как разделитель", func(t *testing.T) {
		amount, _, _, err := parseExpenseInput("99,90 кофе", now)
		require.NoError(t, err)
		assert.Equal(t, 99.90, amount)
	})

	t.Run("явная дата", func(t *testing.T) {
		amount, date, description, err := parseExpenseInput("120 2026-08-30 такси", now)
		require.NoError(t, err)
		assert.Equal(t, 120.0, amount)
		assert.Equal(t, "2026-08-30", date.String())
		require.NotNil(t, description)
		assert.Equal(t, "такси", *description)
	})

	t.Run("не число", func(t *testing.T) {
		_, _, _, err := parseExpenseInput("яблоко 250", now)
		assert.Error(t, err)
	})

	t.Run("неположительная сумма", func(t *testing.T) {
		_, _, _, err := parseExpenseInput("0 кофе", now)
		assert.Error(t, err)
		_, _, _, err = parseExpenseInput("-5 кофе", now)
		assert.Error(t, err)
	})

	t.Run("пустой ввод", func(t *testing.T) {
		_, _, _, err := parseExpenseInput("   ", now)
		assert.Error(t, err)
	})
}
