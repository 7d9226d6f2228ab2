package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ivanoskov/expenses_bot/internal/model"
)

// Шаги диалогов. Пустая строка — бот ничего не ждет.
const (
	awaitLoginEmail       = "login_email"
	awaitLoginPassword    = "login_password"
	awaitRegisterEmail    = "register_email"
	awaitRegisterPassword = "register_password"
	awaitAccountName      = "account_name"
	awaitAccountRename    = "account_rename"
	awaitExpenseInput     = "expense_input"
)

// dialogState — состояние многошагового диалога в одном чате
type dialogState struct {
	Awaiting string

	// Промежуточные данные логина/регистрации
	Email string

	// Добавление расхода
	SelectedAccountID  string
	SelectedCategoryID string

	// Управление счетами
	PendingAccountName string
	RenameAccountID    string
}

func (s *dialogState) reset() {
	*s = dialogState{}
}

// parseExpenseInput разбирает строку вида "250.50 [2026-08-30] обед".
// Дата необязательна, без нее расход записывается сегодняшним днем.
// Описание тоже необязательно.
func parseExpenseInput(text string, now time.Time) (float64, model.Date, *string, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return 0, model.Date{}, nil, fmt.Errorf("пустой ввод")
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", "."), 64)
	if err != nil {
		return 0, model.Date{}, nil, fmt.Errorf("не получилось разобрать сумму %q", fields[0])
	}
	if amount <= 0 {
		return 0, model.Date{}, nil, fmt.Errorf("сумма должна быть больше нуля")
	}

	date := model.NewDate(now)
	rest := fields[1:]
	if len(rest) > 0 {
		if parsed, err := model.ParseDate(rest[0]); err == nil {
			date = parsed
			rest = rest[1:]
		}
	}

	var description *string
	if len(rest) > 0 {
		text := strings.Join(rest, " ")
		description = &text
	}

	return amount, date, description, nil
}
