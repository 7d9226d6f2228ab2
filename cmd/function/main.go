package main

import (
	"context"

	"github.com/ivanoskov/expenses_bot/internal/bot"
	"github.com/ivanoskov/expenses_bot/internal/config"
)

// Request — структура входящего запроса от API Gateway
type Request struct {
	Body string `json:"body"`
}

// Response — структура ответа для API Gateway
type Response struct {
	StatusCode int               `json:"statusCode"`
	Body       string            `json:"body"`
	Headers    map[string]string `json:"headers,omitempty"`
}

func Handler(ctx context.Context, request Request) (*Response, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return errorResponse(err)
	}

	b, err := bot.NewBot(cfg)
	if err != nil {
		return errorResponse(err)
	}

	// Обработка webhook-обновления
	if err := b.HandleWebhook([]byte(request.Body)); err != nil {
		return errorResponse(err)
	}

	return &Response{
		StatusCode: 200,
		Body:       "",
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

func errorResponse(err error) (*Response, error) {
	return &Response{
		StatusCode: 500,
		Body:       err.Error(),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

func main() {
	// Точка входа для локального тестирования
}
