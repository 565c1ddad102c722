package validators

import (
	"math"
	"net/mail"
	"strings"

	"github.com/shopspring/decimal"
)

// CheckNumber проверяет, что строка - число. Пробелы по краям игнорируются.
func CheckNumber(value string) (decimal.Decimal, bool) {
	number, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return number, true
}

// MaxLength - верхняя граница длины строки, когда операция её не задаёт
const MaxLength = math.MaxInt32

// CheckLength проверяет длину строки: целое положительное число не больше limit.
// limit <= 0 или больше MaxLength - ограничение MaxLength.
func CheckLength(length decimal.Decimal, limit int) bool {
	if !length.IsInteger() || !length.IsPositive() {
		return false
	}
	if limit <= 0 || limit > MaxLength {
		limit = MaxLength
	}
	return length.LessThanOrEqual(decimal.NewFromInt(int64(limit)))
}

// CheckEmail проверяет адрес почты
func CheckEmail(email string) bool {
	address, err := mail.ParseAddress(email)
	return err == nil && address.Address == email
}
