package model

type AccountType string

const (
	AccountTypeBank AccountType = "BANK"
	AccountTypeCard AccountType = "CARD"
)

type Account struct {
	ID     string      `json:"id"`
	UserID string      `json:"user_id"`
	Name   string      `json:"name"`
	Type   AccountType `json:"type"`
}
