package finance

import (
	"context"
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/ivanoskov/expenses_bot/internal/api"
	"github.com/ivanoskov/expenses_bot/internal/model"
)

// PeriodBounds возвращает границы периода вокруг опорной даты:
// день — сама дата, неделя — с воскресенья, месяц — с первого числа.
func PeriodBounds(period model.SummaryPeriod, ref time.Time) (time.Time, time.Time) {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	switch period {
	case model.PeriodDaily:
		return day, day
	case model.PeriodWeekly:
		return day.AddDate(0, 0, -int(day.Weekday())), day
	case model.PeriodMonthly:
		return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC), day
	default:
		return day, day
	}
}

// Summarize агрегирует сырой список расходов по категориям и счетам.
// Это резервный путь на случай недоступного эндпоинта summary: когда
// агрегат считает сервер, клиент свои суммы не пересчитывает, чтобы
// цифры не расходились с серверными.
func Summarize(expenses []model.Expense, categories []model.Category, accounts []model.Account, period model.SummaryPeriod, start, end time.Time) *model.ExpenseSummary {
	categoryNames := make(map[string]string, len(categories))
	for _, cat := range categories {
		categoryNames[cat.ID] = cat.Name
	}
	accountNames := make(map[string]string, len(accounts))
	for _, acc := range accounts {
		accountNames[acc.ID] = acc.Name
	}

	total := 0.0
	byCategory := make(map[string]float64)
	byAccount := make(map[string]float64)
	for _, exp := range expenses {
		total += exp.Amount
		byCategory[exp.CategoryID] += exp.Amount
		byAccount[exp.AccountID] += exp.Amount
	}

	summary := &model.ExpenseSummary{
		Period:     period,
		StartDate:  model.NewDate(start),
		EndDate:    model.NewDate(end),
		Total:      round2(total),
		ByCategory: make([]model.CategorySummary, 0, len(byCategory)),
		ByAccount:  make([]model.AccountSummary, 0, len(byAccount)),
	}

	for id, amount := range byCategory {
		summary.ByCategory = append(summary.ByCategory, model.CategorySummary{
			CategoryID:   id,
			CategoryName: categoryNames[id],
			Total:        round2(amount),
		})
	}
	for id, amount := range byAccount {
		summary.ByAccount = append(summary.ByAccount, model.AccountSummary{
			AccountID:   id,
			AccountName: accountNames[id],
			Total:       round2(amount),
		})
	}

	// Крупные категории и счета первыми
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		return summary.ByCategory[i].Total > summary.ByCategory[j].Total
	})
	sort.Slice(summary.ByAccount, func(i, j int) bool {
		return summary.ByAccount[i].Total > summary.ByAccount[j].Total
	})

	return summary
}

// SummaryOrAggregate берет серверный агрегат, а при отсутствии
// эндпоинта (404) собирает его сам из сырого списка расходов.
// Остальные ошибки пробрасываются как есть.
func (s *Services) SummaryOrAggregate(ctx context.Context, period model.SummaryPeriod, referenceDate *time.Time) (*model.ExpenseSummary, error) {
	summary, err := s.Expenses.Summary(ctx, period, referenceDate)
	if err == nil {
		return summary, nil
	}
	if !api.IsStatus(err, http.StatusNotFound) {
		return nil, err
	}

	ref := time.Now().UTC()
	if referenceDate != nil {
		ref = *referenceDate
	}
	start, end := PeriodBounds(period, ref)

	expenses, err := s.Expenses.List(ctx, ExpenseFilter{From: &start, To: &end})
	if err != nil {
		return nil, err
	}
	categories, err := s.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	return Summarize(expenses, categories, accounts, period, start, end), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
