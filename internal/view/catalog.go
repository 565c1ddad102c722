package view

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/denmor86/calc-web/internal/models"
)

// Option - флаг генератора строк
type Option struct {
	Name    string
	Default bool
}

// StringGeneratorOptions - флаги генерации случайной строки
var StringGeneratorOptions = []Option{
	{Name: "Alphabetic", Default: true},
	{Name: "Uppercase", Default: true},
	{Name: "Lowercase", Default: true},
	{Name: "Numbers", Default: true},
	{Name: "Symbols", Default: true},
}

// InputSpec - описание полей ввода операции
type InputSpec struct {
	Type        string
	Multiple    bool
	MinInput    int
	MaxLength   int
	Options     []Option
	Label       func(index int) string
	Placeholder func(index int) string
}

// OperationConfig - запись каталога операций
type OperationConfig struct {
	Value models.OperationType
	Name  string
	// Symbol - знак операции для отображения выражения
	Symbol string
	Input  InputSpec
}

func examplePlaceholder(index int) string {
	return fmt.Sprintf("Example: %d", index+1)
}

func binaryLabel(rest string) func(int) string {
	return func(index int) string {
		if index == 0 {
			return "This number"
		}
		return rest
	}
}

func constant(s string) func(int) string {
	return func(int) string { return s }
}

var catalog = map[models.OperationType]OperationConfig{
	models.OperationAddition: {
		Value:  models.OperationAddition,
		Name:   "Addition",
		Symbol: "+",
		Input: InputSpec{
			Type: "number", Multiple: true, MinInput: 2,
			Label: binaryLabel("Plus"), Placeholder: examplePlaceholder,
		},
	},
	models.OperationSubtraction: {
		Value:  models.OperationSubtraction,
		Name:   "Subtract",
		Symbol: "-",
		Input: InputSpec{
			Type: "number", Multiple: true, MinInput: 2,
			Label: binaryLabel("Substracting"), Placeholder: examplePlaceholder,
		},
	},
	models.OperationMultiplication: {
		Value:  models.OperationMultiplication,
		Name:   "Multiply",
		Symbol: "*",
		Input: InputSpec{
			Type: "number", Multiple: true, MinInput: 2,
			Label: binaryLabel("Multiplied by"), Placeholder: examplePlaceholder,
		},
	},
	models.OperationDivision: {
		Value:  models.OperationDivision,
		Name:   "Divide",
		Symbol: "/",
		Input: InputSpec{
			Type: "number", Multiple: true, MinInput: 2,
			Label: binaryLabel("Divided by"), Placeholder: examplePlaceholder,
		},
	},
	models.OperationSquareRoot: {
		Value:  models.OperationSquareRoot,
		Name:   "Square root",
		Symbol: "√",
		Input: InputSpec{
			Type:        "number",
			Label:       constant("Square root of ..."),
			Placeholder: constant("Type the base number"),
		},
	},
	models.OperationRandomString: {
		Value: models.OperationRandomString,
		Name:  "Random String",
		Input: InputSpec{
			Type:        "number",
			Options:     StringGeneratorOptions,
			Label:       constant("String length"),
			Placeholder: constant("Example: 10"),
		},
	},
	models.OperationRandomStringV2: {
		Value: models.OperationRandomStringV2,
		Name:  "Random String (Random.org)",
		Input: InputSpec{
			Type:        "number",
			Options:     StringGeneratorOptions,
			MaxLength:   32,
			Label:       constant("String length"),
			Placeholder: constant("Example: 10"),
		},
	},
}

// OperationTypes - виды операций каталога в порядке отображения
var OperationTypes = []models.OperationType{
	models.OperationAddition,
	models.OperationSubtraction,
	models.OperationMultiplication,
	models.OperationDivision,
	models.OperationSquareRoot,
	models.OperationRandomString,
	models.OperationRandomStringV2,
}

// SortOperations - операции в порядке каталога, неизвестные виды в конце в исходном порядке
func SortOperations(operations []models.Operation) []models.Operation {
	rank := func(op models.Operation) int {
		if i := slices.Index(OperationTypes, op.Type); i >= 0 {
			return i
		}
		return len(OperationTypes)
	}
	sorted := slices.Clone(operations)
	slices.SortStableFunc(sorted, func(a, b models.Operation) int {
		return cmp.Compare(rank(a), rank(b))
	})
	return sorted
}

// LookupOperation - конфигурация операции по виду
func LookupOperation(operationType models.OperationType) (OperationConfig, bool) {
	config, ok := catalog[operationType]
	return config, ok
}

// MinInputs - минимальное число полей ввода
func (s InputSpec) MinInputs() int {
	if s.MinInput > 0 {
		return s.MinInput
	}
	return 1
}

// StringGenerator - операция генерации строки (поле длины и флаги)
func (s InputSpec) StringGenerator() bool {
	return len(s.Options) > 0
}
