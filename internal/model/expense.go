package model

import (
	"fmt"
	"time"
)

type Expense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	CategoryID  string    `json:"category_id"`
	AccountID   string    `json:"account_id"`
	CardID      *string   `json:"card_id"`
	Description *string   `json:"description"`
	ExpenseDate Date      `json:"expense_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// FormatAmount приводит сумму к двум знакам после запятой для отображения.
// Округление делаем только при выводе, сами значения не трогаем.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
