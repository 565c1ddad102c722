package view

import (
	"fmt"
	"strings"

	"github.com/denmor86/calc-web/internal/models"
)

// UnsupportedOperation - подпись записи с неизвестным видом операции
const UnsupportedOperation = "Unsupported operation"

const resultPreviewLimit = 24

// RecordRow - строка таблицы записей
type RecordRow struct {
	ID         string
	Operation  string
	Expression string
	Cost       string
	Result     string
	Date       string
	Balance    string
}

func NewRecordRow(record models.Record) RecordRow {
	row := RecordRow{
		ID:         record.ID,
		Operation:  UnsupportedOperation,
		Expression: DescribeRecord(record),
		Cost:       FormatAmount(record.Cost),
		Result:     LimitCharacters(fmt.Sprint(record.OperationResult), resultPreviewLimit),
		Balance:    FormatAmount(record.OldUserBalance) + " -> " + FormatAmount(record.NewUserBalance),
	}
	if config, ok := LookupOperation(record.OperationType); ok {
		row.Operation = config.Name
	}
	if record.OperationResult == nil {
		row.Result = ""
	}
	if !record.Date.IsZero() {
		row.Date = record.Date.Format("2006-01-02 15:04")
	}
	return row
}

// DescribeRecord - выражение операции по её аргументам
func DescribeRecord(record models.Record) string {
	config, ok := LookupOperation(record.OperationType)
	if !ok {
		return UnsupportedOperation
	}
	args := make([]string, 0, len(record.OperationArgs))
	for _, arg := range record.OperationArgs {
		// флаги генератора строк не входят в выражение
		if _, isMap := arg.(map[string]any); isMap {
			continue
		}
		args = append(args, fmt.Sprint(arg))
	}
	if len(args) == 0 {
		return config.Name
	}

	switch {
	case config.Input.StringGenerator():
		return fmt.Sprintf("%s of length %s", config.Name, args[0])
	case config.Input.Multiple:
		return strings.Join(args, " "+config.Symbol+" ")
	default:
		return config.Symbol + args[0]
	}
}
