package models

import "github.com/shopspring/decimal"

// User - профиль пользователя с текущим балансом
type User struct {
	Email   string          `json:"email"`
	Balance decimal.Decimal `json:"balance"`
}

// SignInRequest - модель запроса входа пользователя
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
