package finance

import (
	"context"

	"github.com/ivanoskov/expenses_bot/internal/api"
)

// Gateway — то, что нужно доменным сервисам от API-клиента
type Gateway interface {
	Do(ctx context.Context, method, path string, params api.Params, body, out any) error
}

// Services — типизированные обертки над REST-ресурсами бэкенда.
// Никакой бизнес-логики: только формирование тел и query-параметров.
// Ошибки шлюза пробрасываются наверх без изменений.
type Services struct {
	Accounts   *AccountsService
	Categories *CategoriesService
	Expenses   *ExpensesService
}

func NewServices(gw Gateway) *Services {
	return &Services{
		Accounts:   &AccountsService{gw: gw},
		Categories: &CategoriesService{gw: gw},
		Expenses:   &ExpensesService{gw: gw},
	}
}
