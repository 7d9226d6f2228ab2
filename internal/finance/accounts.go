package finance

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ivanoskov/expenses_bot/internal/model"
)

type AccountsService struct {
	gw Gateway
}

func (s *AccountsService) List(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := s.gw.Do(ctx, http.MethodGet, "/accounts", nil, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *AccountsService) Create(ctx context.Context, name string, accType model.AccountType) (*model.Account, error) {
	body := struct {
		Name string            `json:"name"`
		Type model.AccountType `json:"type"`
	}{name, accType}

	var account model.Account
	if err := s.gw.Do(ctx, http.MethodPost, "/accounts", nil, body, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *AccountsService) Update(ctx context.Context, id, name string) (*model.Account, error) {
	body := struct {
		Name string `json:"name"`
	}{name}

	var account model.Account
	if err := s.gw.Do(ctx, http.MethodPut, "/accounts/"+url.PathEscape(id), nil, body, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Delete удаляет счет. Каскадное удаление его расходов делает бэкенд,
// клиент отдельных запросов на расходы не шлет.
func (s *AccountsService) Delete(ctx context.Context, id string) error {
	return s.gw.Do(ctx, http.MethodDelete, "/accounts/"+url.PathEscape(id), nil, nil, nil)
}
