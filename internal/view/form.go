package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/denmor86/calc-web/internal/models"
	"github.com/denmor86/calc-web/internal/validators"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Подписи кнопки отправки формы операции
const (
	SubmitLabel     = "Submit"
	PerformingLabel = "Performing ..."
)

var (
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInputNotFound        = errors.New("input not found")
	ErrTooFewInputs         = errors.New("too few inputs")
	ErrSingleInput          = errors.New("operation accepts a single input")
	ErrUnknownOption        = errors.New("unknown option")
)

// Input - поле ввода формы
type Input struct {
	Key         string
	Label       string
	Placeholder string
	Value       string
}

// OptionValue - состояние флага генератора строк
type OptionValue struct {
	Name    string
	Enabled bool
}

type field struct {
	key   string
	value string
}

// OperationForm - форма выполнения операции с полями по каталогу
type OperationForm struct {
	Operation models.Operation
	Config    OperationConfig

	fields     []field
	options    map[string]bool
	submitting Loader
}

// NewOperationForm - форма для операции. submitting сообщает, что запрос выполнения в процессе.
func NewOperationForm(operation models.Operation, submitting Loader) (*OperationForm, error) {
	config, ok := LookupOperation(operation.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOperation, operation.Type)
	}
	form := &OperationForm{
		Operation:  operation,
		Config:     config,
		options:    make(map[string]bool, len(config.Input.Options)),
		submitting: submitting,
	}
	for i := 0; i < config.Input.MinInputs(); i++ {
		form.fields = append(form.fields, field{key: uuid.NewString()})
	}
	for _, opt := range config.Input.Options {
		form.options[opt.Name] = opt.Default
	}
	return form, nil
}

// Inputs - поля ввода с подписями по позиции
func (f *OperationForm) Inputs() []Input {
	inputs := make([]Input, 0, len(f.fields))
	for i, fl := range f.fields {
		inputs = append(inputs, Input{
			Key:         fl.key,
			Label:       f.Config.Input.Label(i),
			Placeholder: f.Config.Input.Placeholder(i),
			Value:       fl.value,
		})
	}
	return inputs
}

// AddInput - добавляет поле для операций с несколькими аргументами
func (f *OperationForm) AddInput() (string, error) {
	if !f.Config.Input.Multiple {
		return "", ErrSingleInput
	}
	key := uuid.NewString()
	f.fields = append(f.fields, field{key: key})
	return key, nil
}

// RemoveInput - удаляет поле, но не меньше минимального числа
func (f *OperationForm) RemoveInput(key string) error {
	i := f.index(key)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrInputNotFound, key)
	}
	if len(f.fields) <= f.Config.Input.MinInputs() {
		return ErrTooFewInputs
	}
	f.fields = append(f.fields[:i], f.fields[i+1:]...)
	return nil
}

func (f *OperationForm) SetValue(key string, value string) error {
	i := f.index(key)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrInputNotFound, key)
	}
	f.fields[i].value = value
	return nil
}

// SetValues - заполняет поля по порядку, добавляя недостающие
func (f *OperationForm) SetValues(values ...string) error {
	if len(values) > len(f.fields) && !f.Config.Input.Multiple {
		return ErrSingleInput
	}
	for len(f.fields) < len(values) {
		if _, err := f.AddInput(); err != nil {
			return err
		}
	}
	for i, value := range values {
		f.fields[i].value = value
	}
	return nil
}

// Options - флаги генератора строк в порядке каталога
func (f *OperationForm) Options() []OptionValue {
	values := make([]OptionValue, 0, len(f.Config.Input.Options))
	for _, opt := range f.Config.Input.Options {
		values = append(values, OptionValue{Name: opt.Name, Enabled: f.options[opt.Name]})
	}
	return values
}

func (f *OperationForm) SetOption(name string, enabled bool) error {
	if _, ok := f.options[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	f.options[name] = enabled
	return nil
}

// Args - аргументы запроса. Для арифметики - числа, для генератора строк - [длина, флаги].
func (f *OperationForm) Args() ([]any, error) {
	if len(f.fields) < f.Config.Input.MinInputs() {
		return nil, ErrTooFewInputs
	}
	if f.Config.Input.StringGenerator() {
		return f.stringGeneratorArgs()
	}

	args := make([]any, 0, len(f.fields))
	for i, fl := range f.fields {
		number, err := f.parse(i, fl.value)
		if err != nil {
			return nil, err
		}
		args = append(args, number.InexactFloat64())
	}
	return args, nil
}

func (f *OperationForm) stringGeneratorArgs() ([]any, error) {
	length, err := f.parse(0, f.fields[0].value)
	if err != nil {
		return nil, err
	}
	if !validators.CheckLength(length, f.Config.Input.MaxLength) {
		if limit := f.Config.Input.MaxLength; limit > 0 {
			return nil, fmt.Errorf("%w: %s must be a positive integer up to %d", ErrInvalidInput, f.Config.Input.Label(0), limit)
		}
		return nil, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidInput, f.Config.Input.Label(0))
	}

	flags := make(map[string]bool, len(f.options))
	enabled := false
	for _, opt := range f.Config.Input.Options {
		flags[strings.ToLower(opt.Name)] = f.options[opt.Name]
		enabled = enabled || f.options[opt.Name]
	}
	if !enabled {
		return nil, fmt.Errorf("%w: at least one character set must be enabled", ErrInvalidInput)
	}
	return []any{length.IntPart(), flags}, nil
}

func (f *OperationForm) parse(index int, value string) (decimal.Decimal, error) {
	number, ok := validators.CheckNumber(value)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %s must be a number", ErrInvalidInput, f.Config.Input.Label(index))
	}
	return number, nil
}

// Request - запрос выполнения операции из заполненной формы
func (f *OperationForm) Request() (models.PerformOperationRequest, error) {
	args, err := f.Args()
	if err != nil {
		return models.PerformOperationRequest{}, err
	}
	return models.PerformOperationRequest{OperationID: f.Operation.ID, Args: args}, nil
}

// Disabled - поля и кнопка недоступны во время выполнения
func (f *OperationForm) Disabled() bool {
	return f.submitting != nil && f.submitting.Loading()
}

func (f *OperationForm) SubmitLabel() string {
	if f.Disabled() {
		return PerformingLabel
	}
	return SubmitLabel
}

func (f *OperationForm) index(key string) int {
	for i, fl := range f.fields {
		if fl.key == key {
			return i
		}
	}
	return -1
}
