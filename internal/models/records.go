package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record - неизменяемая запись аудита выполнения операции, создаётся сервером
type Record struct {
	ID              string          `json:"id"`
	OperationID     string          `json:"operationId"`
	OperationType   OperationType   `json:"operationType"`
	Cost            decimal.Decimal `json:"cost"`
	OperationArgs   []any           `json:"operationArgs"`
	OperationResult any             `json:"operationResult"`
	Date            time.Time       `json:"date"`
	OldUserBalance  decimal.Decimal `json:"oldUserBalance"`
	NewUserBalance  decimal.Decimal `json:"newUserBalance"`
}
