package model

// Category — системная (UserID == nil) или пользовательская категория расходов
type Category struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	UserID *string `json:"user_id"`
}
