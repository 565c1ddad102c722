package view

import (
	"errors"
	"testing"

	"github.com/denmor86/calc-web/internal/models"
	"github.com/denmor86/calc-web/internal/view/mocks"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func operation(operationType models.OperationType) models.Operation {
	return models.Operation{ID: "op-" + string(operationType), Type: operationType, Name: string(operationType)}
}

func TestOperationForm_Inputs(t *testing.T) {
	testCases := []struct {
		TestName       string
		Type           models.OperationType
		ExpectedLabels []string
		ExpectedHolder []string
		ExpectedOpts   int
	}{
		{TestName: "Addition #1", Type: models.OperationAddition, ExpectedLabels: []string{"This number", "Plus"}, ExpectedHolder: []string{"Example: 1", "Example: 2"}},
		{TestName: "Subtraction #2", Type: models.OperationSubtraction, ExpectedLabels: []string{"This number", "Substracting"}, ExpectedHolder: []string{"Example: 1", "Example: 2"}},
		{TestName: "Multiplication #3", Type: models.OperationMultiplication, ExpectedLabels: []string{"This number", "Multiplied by"}, ExpectedHolder: []string{"Example: 1", "Example: 2"}},
		{TestName: "Division #4", Type: models.OperationDivision, ExpectedLabels: []string{"This number", "Divided by"}, ExpectedHolder: []string{"Example: 1", "Example: 2"}},
		{TestName: "Square root #5", Type: models.OperationSquareRoot, ExpectedLabels: []string{"Square root of ..."}, ExpectedHolder: []string{"Type the base number"}},
		{TestName: "Random string #6", Type: models.OperationRandomString, ExpectedLabels: []string{"String length"}, ExpectedHolder: []string{"Example: 10"}, ExpectedOpts: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			form, err := NewOperationForm(operation(tc.Type), nil)
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			var labels, holders []string
			keys := map[string]bool{}
			for _, input := range form.Inputs() {
				labels = append(labels, input.Label)
				holders = append(holders, input.Placeholder)
				keys[input.Key] = true
			}
			if diff := cmp.Diff(tc.ExpectedLabels, labels); diff != "" {
				t.Errorf("Labels mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.ExpectedHolder, holders); diff != "" {
				t.Errorf("Placeholders mismatch (-want +got):\n%s", diff)
			}
			if len(keys) != len(labels) {
				t.Errorf("Expected unique input keys, got: '%v'", keys)
			}
			if len(form.Options()) != tc.ExpectedOpts {
				t.Errorf("Expected %d options, got: '%v'", tc.ExpectedOpts, form.Options())
			}
		})
	}

	if _, err := NewOperationForm(operation("unsupported"), nil); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("Expected error: '%v', got: '%v'", ErrUnsupportedOperation, err)
	}
}

func TestOperationForm_DynamicInputs(t *testing.T) {
	form, err := NewOperationForm(operation(models.OperationAddition), nil)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	key, err := form.AddInput()
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	inputs := form.Inputs()
	if len(inputs) != 3 || inputs[2].Key != key || inputs[2].Label != "Plus" || inputs[2].Placeholder != "Example: 3" {
		t.Fatalf("Unexpected inputs: '%+v'", inputs)
	}

	if err := form.RemoveInput(key); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if err := form.RemoveInput(inputs[0].Key); !errors.Is(err, ErrTooFewInputs) {
		t.Errorf("Expected error: '%v', got: '%v'", ErrTooFewInputs, err)
	}
	if err := form.RemoveInput("missing"); !errors.Is(err, ErrInputNotFound) {
		t.Errorf("Expected error: '%v', got: '%v'", ErrInputNotFound, err)
	}

	single, _ := NewOperationForm(operation(models.OperationSquareRoot), nil)
	if _, err := single.AddInput(); !errors.Is(err, ErrSingleInput) {
		t.Errorf("Expected error: '%v', got: '%v'", ErrSingleInput, err)
	}
	if err := single.SetValues("4", "9"); !errors.Is(err, ErrSingleInput) {
		t.Errorf("Expected error: '%v', got: '%v'", ErrSingleInput, err)
	}
}

func TestOperationForm_Request(t *testing.T) {
	testCases := []struct {
		TestName      string
		Type          models.OperationType
		Values        []string
		Options       map[string]bool
		ExpectedArgs  []any
		ExpectedError error
	}{
		{TestName: "Addition of three numbers #1", Type: models.OperationAddition, Values: []string{"1", "2.5", " 3 "}, ExpectedArgs: []any{1.0, 2.5, 3.0}},
		{TestName: "Subtraction #2", Type: models.OperationSubtraction, Values: []string{"10", "-4"}, ExpectedArgs: []any{10.0, -4.0}},
		{TestName: "Multiplication #3", Type: models.OperationMultiplication, Values: []string{"6", "7"}, ExpectedArgs: []any{6.0, 7.0}},
		{TestName: "Division #4", Type: models.OperationDivision, Values: []string{"1", "4"}, ExpectedArgs: []any{1.0, 4.0}},
		{TestName: "Square root #5", Type: models.OperationSquareRoot, Values: []string{"16"}, ExpectedArgs: []any{16.0}},
		{
			TestName: "Random string with options #6",
			Type:     models.OperationRandomString,
			Values:   []string{"10"},
			Options:  map[string]bool{"Symbols": false},
			ExpectedArgs: []any{int64(10), map[string]bool{
				"alphabetic": true, "uppercase": true, "lowercase": true, "numbers": true, "symbols": false,
			}},
		},
		{TestName: "Error. Not a number #7", Type: models.OperationAddition, Values: []string{"1", "two"}, ExpectedError: ErrInvalidInput},
		{TestName: "Error. Empty value #8", Type: models.OperationDivision, Values: []string{"1"}, ExpectedError: ErrInvalidInput},
		{TestName: "Error. Length above limit #9", Type: models.OperationRandomStringV2, Values: []string{"33"}, ExpectedError: ErrInvalidInput},
		{TestName: "Error. Fractional length #10", Type: models.OperationRandomString, Values: []string{"2.5"}, ExpectedError: ErrInvalidInput},
		{TestName: "Error. Length beyond integer range #11", Type: models.OperationRandomString, Values: []string{"1e30"}, ExpectedError: ErrInvalidInput},
		{
			TestName:      "Error. No character set #12",
			Type:          models.OperationRandomString,
			Values:        []string{"5"},
			Options:       map[string]bool{"Alphabetic": false, "Uppercase": false, "Lowercase": false, "Numbers": false, "Symbols": false},
			ExpectedError: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			form, err := NewOperationForm(operation(tc.Type), nil)
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if err := form.SetValues(tc.Values...); err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			for name, enabled := range tc.Options {
				if err := form.SetOption(name, enabled); err != nil {
					t.Fatalf("Expected no error, got: '%v'", err)
				}
			}

			req, err := form.Request()
			if tc.ExpectedError != nil {
				if !errors.Is(err, tc.ExpectedError) {
					t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if req.OperationID != "op-"+string(tc.Type) {
				t.Errorf("Expected operation id: '%v', got: '%v'", "op-"+string(tc.Type), req.OperationID)
			}
			if diff := cmp.Diff(tc.ExpectedArgs, req.Args); diff != "" {
				t.Errorf("Args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOperationForm_SubmitLabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	performing := mocks.NewMockLoader(ctrl)

	form, err := NewOperationForm(operation(models.OperationAddition), performing)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	performing.EXPECT().Loading().Return(false)
	if form.SubmitLabel() != SubmitLabel {
		t.Errorf("Expected label: '%v', got: '%v'", SubmitLabel, form.SubmitLabel())
	}
	performing.EXPECT().Loading().Return(true).Times(2)
	if form.SubmitLabel() != PerformingLabel {
		t.Errorf("Expected label: '%v'", PerformingLabel)
	}
	if !form.Disabled() {
		t.Errorf("Expected form to be disabled while performing")
	}

	if err := form.SetOption("Symbols", true); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("Expected error: '%v', got: '%v'", ErrUnknownOption, err)
	}
}

func TestSortOperations(t *testing.T) {
	unknown := models.Operation{ID: "op-pow", Type: models.OperationType("power"), Name: "power"}
	input := []models.Operation{
		unknown,
		operation(models.OperationRandomStringV2),
		operation(models.OperationSquareRoot),
		operation(models.OperationAddition),
	}
	expected := []models.Operation{
		operation(models.OperationAddition),
		operation(models.OperationSquareRoot),
		operation(models.OperationRandomStringV2),
		unknown,
	}
	if diff := cmp.Diff(expected, SortOperations(input)); diff != "" {
		t.Errorf("Operations mismatch (-want +got):\n%s", diff)
	}
	if input[0] != unknown {
		t.Errorf("Expected input to stay unchanged, got: '%v'", input)
	}
}
