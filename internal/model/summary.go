package model

type SummaryPeriod string

const (
	PeriodDaily   SummaryPeriod = "daily"
	PeriodWeekly  SummaryPeriod = "weekly"
	PeriodMonthly SummaryPeriod = "monthly"
)

type CategorySummary struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Total        float64 `json:"total"`
}

type AccountSummary struct {
	AccountID   string  `json:"account_id"`
	AccountName string  `json:"account_name"`
	Total       float64 `json:"total"`
}

// ExpenseSummary — агрегат расходов за период. Считается бэкендом,
// клиент его только отображает.
type ExpenseSummary struct {
	Period     SummaryPeriod     `json:"period"`
	StartDate  Date              `json:"start_date"`
	EndDate    Date              `json:"end_date"`
	Total      float64           `json:"total"`
	ByCategory []CategorySummary `json:"by_category"`
	ByAccount  []AccountSummary  `json:"by_account"`
}
