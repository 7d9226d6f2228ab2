package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ivanoskov/expenses_bot/internal/model"
)

// Login обменивает учетные данные на пару токенов. Бэкенд ждет
// form-urlencoded тело с полем username (туда идет email) — это
// стандартный OAuth2 password grant, единственное исключение из JSON.
func (c *Client) Login(ctx context.Context, email, password string) (*model.AuthTokens, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var tokens model.AuthTokens
	if err := c.Do(ctx, http.MethodPost, "/auth/login", nil, form, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Register создает пользователя. Успешная регистрация сама по себе не
// аутентифицирует — токены нужно получать отдельным логином.
func (c *Client) Register(ctx context.Context, email, password, timezone string) (*model.User, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Timezone string `json:"timezone"`
	}{email, password, timezone}

	var user model.User
	if err := c.Do(ctx, http.MethodPost, "/auth/register", nil, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Refresh обменивает refresh-токен на новую пару токенов
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*model.AuthTokens, error) {
	var tokens model.AuthTokens
	params := Params{"refresh_token": refreshToken}
	if err := c.Do(ctx, http.MethodPost, "/auth/refresh", params, nil, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}
