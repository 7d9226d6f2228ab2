package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource отдает текущий access-токен. Пустая строка — запрос
// уходит без авторизации, защищенные пути отклонит сервер.
type TokenSource interface {
	AccessToken() string
}

// Params — query-параметры запроса. Пустые значения в URL не попадают,
// поэтому отсутствующий фильтр и фильтр с пустым значением дают
// одинаковый запрос.
type Params map[string]string

// Client — единая точка для всех исходящих вызовов API: собирает URL,
// подставляет bearer-токен, сериализует тело и нормализует ошибки.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetTokenSource подключает хранилище сессии. Вызывается один раз при
// сборке, до первого запроса.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// Do выполняет запрос и декодирует ответ в out. Тело запроса:
// nil — без тела, url.Values — form-urlencoded (логин по OAuth2
// password grant), иначе JSON. Ответ 204 не декодируется.
func (c *Client) Do(ctx context.Context, method, path string, params Params, body, out any) error {
	endpoint := c.buildURL(path, params)
	requestID := uuid.NewString()

	var reader io.Reader
	contentType := ""
	switch payload := body.(type) {
	case nil:
	case url.Values:
		reader = strings.NewReader(payload.Encode())
		contentType = "application/x-www-form-urlencoded"
	default:
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-Id", requestID)
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp, requestID)
	}

	// Ответы без тела (удаление) не парсим
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) buildURL(path string, params Params) string {
	endpoint := c.baseURL + path
	if len(params) == 0 {
		return endpoint
	}

	query := url.Values{}
	for key, value := range params {
		if value == "" {
			continue
		}
		query.Set(key, value)
	}
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}
	return endpoint
}
