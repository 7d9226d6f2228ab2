package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrRequestFailed — сообщение по умолчанию, когда тело ошибки
// отсутствует или не парсится
const ErrRequestFailed = "Request failed"

// Error — единственный тип ошибки для всех неуспешных ответов API.
// Error() возвращает сообщение сервера как есть, чтобы его можно было
// показать пользователю без обработки.
type Error struct {
	Status    int
	Detail    string
	RequestID string
}

func (e *Error) Error() string {
	return e.Detail
}

// IsStatus сообщает, является ли err ошибкой API с данным HTTP-статусом
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// decodeError разбирает тело неуспешного ответа. Сервер отдает
// {"detail": "..."}; на всякий случай смотрим и поле message.
func decodeError(resp *http.Response, requestID string) *Error {
	apiErr := &Error{
		Status:    resp.StatusCode,
		Detail:    ErrRequestFailed,
		RequestID: requestID,
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}

	switch {
	case payload.Detail != "":
		apiErr.Detail = payload.Detail
	case payload.Message != "":
		apiErr.Detail = payload.Message
	}
	return apiErr
}
