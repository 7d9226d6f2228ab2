package finance

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ivanoskov/expenses_bot/internal/api"
	"github.com/ivanoskov/expenses_bot/internal/model"
)

type ExpensesService struct {
	gw Gateway
}

// ExpenseFilter — необязательные фильтры списка расходов. Незаданные
// поля в query-строку не попадают.
type ExpenseFilter struct {
	From       *time.Time
	To         *time.Time
	AccountID  string
	CategoryID string
	Limit      int
	Offset     int
}

func (f ExpenseFilter) params() api.Params {
	params := api.Params{}
	if f.From != nil {
		params["from"] = f.From.Format("2006-01-02")
	}
	if f.To != nil {
		params["to"] = f.To.Format("2006-01-02")
	}
	if f.AccountID != "" {
		params["account"] = f.AccountID
	}
	if f.CategoryID != "" {
		params["category"] = f.CategoryID
	}
	if f.Limit > 0 {
		params["limit"] = strconv.Itoa(f.Limit)
	}
	if f.Offset > 0 {
		params["offset"] = strconv.Itoa(f.Offset)
	}
	return params
}

type CreateExpenseRequest struct {
	Amount      float64    `json:"amount"`
	CategoryID  string     `json:"category_id"`
	AccountID   string     `json:"account_id"`
	CardID      *string    `json:"card_id,omitempty"`
	Description *string    `json:"description,omitempty"`
	ExpenseDate model.Date `json:"expense_date"`
}

func (s *ExpensesService) List(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := s.gw.Do(ctx, http.MethodGet, "/expenses", filter.params(), nil, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (s *ExpensesService) Create(ctx context.Context, req CreateExpenseRequest) (*model.Expense, error) {
	var expense model.Expense
	if err := s.gw.Do(ctx, http.MethodPost, "/expenses", nil, req, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *ExpensesService) Delete(ctx context.Context, id string) error {
	return s.gw.Do(ctx, http.MethodDelete, "/expenses/"+url.PathEscape(id), nil, nil, nil)
}

// Summary запрашивает готовый агрегат за период. referenceDate == nil
// означает "вокруг сегодняшнего дня".
func (s *ExpensesService) Summary(ctx context.Context, period model.SummaryPeriod, referenceDate *time.Time) (*model.ExpenseSummary, error) {
	params := api.Params{"period": string(period)}
	if referenceDate != nil {
		params["reference_date"] = referenceDate.Format("2006-01-02")
	}

	var summary model.ExpenseSummary
	if err := s.gw.Do(ctx, http.MethodGet, "/expenses/summary", params, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
