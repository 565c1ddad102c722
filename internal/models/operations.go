package models

// OperationType - вид вычислимой операции из каталога
type OperationType string

// Виды операций
const (
	OperationAddition       OperationType = "addition"
	OperationSubtraction    OperationType = "subtraction"
	OperationMultiplication OperationType = "multiplication"
	OperationDivision       OperationType = "division"
	OperationSquareRoot     OperationType = "square_root"
	OperationRandomString   OperationType = "random_string"
	OperationRandomStringV2 OperationType = "random_string_v2"
)

// Operation - запись каталога операций, доступных пользователю
type Operation struct {
	ID   string        `json:"id"`
	Type OperationType `json:"type"`
	Name string        `json:"name"`
}

// PerformOperationRequest - модель запроса выполнения операции
type PerformOperationRequest struct {
	OperationID string `json:"operationId"`
	Args        []any  `json:"args"`
}
