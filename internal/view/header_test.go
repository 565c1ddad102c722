package view

import (
	"context"
	"errors"
	"testing"

	"github.com/denmor86/calc-web/internal/models"
	"github.com/denmor86/calc-web/internal/view/mocks"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestHeader(t *testing.T) {
	testCases := []struct {
		TestName        string
		Loading         bool
		ExpectedBalance string
		ExpectedShown   bool
	}{
		{TestName: "Balance displayed #1", Loading: false, ExpectedBalance: "$200.00", ExpectedShown: true},
		{TestName: "Balance hidden while loading #2", Loading: true, ExpectedBalance: "", ExpectedShown: false},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			user := mocks.NewMockUserSource(ctrl)
			user.EXPECT().Loading().Return(tc.Loading).AnyTimes()
			user.EXPECT().Result().Return(models.User{Email: "test@test", Balance: decimal.NewFromInt(200)}).AnyTimes()

			header := NewHeader(user, nil)
			balance, shown := header.Balance()
			if balance != tc.ExpectedBalance || shown != tc.ExpectedShown {
				t.Errorf("Expected balance: '%v' %v, got: '%v' %v", tc.ExpectedBalance, tc.ExpectedShown, balance, shown)
			}
			if header.CanPerform() == tc.Loading {
				t.Errorf("Expected perform button enabled: '%v'", !tc.Loading)
			}
			if header.Email() != "test@test" {
				t.Errorf("Expected email: 'test@test', got: '%v'", header.Email())
			}
		})
	}
}

func TestHeader_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	user := mocks.NewMockUserSource(ctrl)

	calls := 0
	header := NewHeader(user, func(ctx context.Context) error {
		calls++
		return nil
	})
	if err := header.Logout(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if calls != 1 {
		t.Errorf("Expected sign out to be called once, got: %d", calls)
	}
}

func TestSignInForm(t *testing.T) {
	testCases := []struct {
		TestName      string
		Loading       bool
		Email         string
		Password      string
		ExpectedLabel string
		ExpectedError error
		ExpectedCalls int
	}{
		{TestName: "Success. Submit calls sign in #1", Email: " test@test ", Password: "secret", ExpectedLabel: SignInLabel, ExpectedCalls: 1},
		{TestName: "Error. Disabled while loading #2", Loading: true, Email: "test@test", Password: "secret", ExpectedLabel: PleaseWaitLabel, ExpectedError: ErrBusy},
		{TestName: "Error. Invalid email #3", Email: "test", Password: "secret", ExpectedLabel: SignInLabel, ExpectedError: ErrInvalidEmail},
		{TestName: "Error. Missing password #4", Email: "test@test", ExpectedLabel: SignInLabel, ExpectedError: ErrPasswordMissing},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			session := mocks.NewMockLoader(ctrl)
			session.EXPECT().Loading().Return(tc.Loading).AnyTimes()

			calls := 0
			form := NewSignInForm(session, func(ctx context.Context, email string, password string) error {
				calls++
				if email != "test@test" || password != "secret" {
					t.Errorf("Unexpected credentials: '%v' '%v'", email, password)
				}
				return nil
			})
			form.Email = tc.Email
			form.Password = tc.Password

			if form.SubmitLabel() != tc.ExpectedLabel {
				t.Errorf("Expected label: '%v', got: '%v'", tc.ExpectedLabel, form.SubmitLabel())
			}
			if form.Disabled() != tc.Loading {
				t.Errorf("Expected disabled: '%v', got: '%v'", tc.Loading, form.Disabled())
			}
			err := form.Submit(context.Background())
			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			if calls != tc.ExpectedCalls {
				t.Errorf("Expected %d sign in calls, got: %d", tc.ExpectedCalls, calls)
			}
		})
	}
}
