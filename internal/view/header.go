package view

import (
	"context"
	"errors"
	"strings"

	"github.com/denmor86/calc-web/internal/validators"
)

// Подписи кнопки входа
const (
	SignInLabel     = "Sign in"
	PleaseWaitLabel = "Please wait ..."
)

var (
	ErrBusy            = errors.New("request in progress")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrPasswordMissing = errors.New("password is required")
)

// Header - шапка: email, баланс, выход
type Header struct {
	user    UserSource
	signOut func(ctx context.Context) error
}

func NewHeader(user UserSource, signOut func(ctx context.Context) error) *Header {
	return &Header{user: user, signOut: signOut}
}

// Balance - отформатированный баланс. Во время загрузки профиля баланс скрыт.
func (h *Header) Balance() (string, bool) {
	if h.user.Loading() {
		return "", false
	}
	return FormatAmount(h.user.Result().Balance), true
}

func (h *Header) Email() string {
	return h.user.Result().Email
}

// CanPerform - кнопка новой операции активна, когда профиль загружен
func (h *Header) CanPerform() bool {
	return !h.user.Loading()
}

func (h *Header) Logout(ctx context.Context) error {
	return h.signOut(ctx)
}

// SignInForm - форма входа
type SignInForm struct {
	Email    string
	Password string

	session Loader
	signIn  func(ctx context.Context, email string, password string) error
}

func NewSignInForm(session Loader, signIn func(ctx context.Context, email string, password string) error) *SignInForm {
	return &SignInForm{session: session, signIn: signIn}
}

// Disabled - поля и кнопка недоступны во время входа
func (f *SignInForm) Disabled() bool {
	return f.session.Loading()
}

func (f *SignInForm) SubmitLabel() string {
	if f.Disabled() {
		return PleaseWaitLabel
	}
	return SignInLabel
}

func (f *SignInForm) Submit(ctx context.Context) error {
	if f.Disabled() {
		return ErrBusy
	}
	email := strings.TrimSpace(f.Email)
	if !validators.CheckEmail(email) {
		return ErrInvalidEmail
	}
	if f.Password == "" {
		return ErrPasswordMissing
	}
	return f.signIn(ctx, email, f.Password)
}
