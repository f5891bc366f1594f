package tui

import (
	"context"

	"github.com/blackpdx/ggokka-ot/internal/services/auth"
	"github.com/blackpdx/ggokka-ot/internal/services/forms"
)

// Account is the signed-in user as the app sees it
type Account struct {
	Name  string
	Email string
}

// Backend performs the account calls of the onboarding screens.
// Errors should wrap auth.ErrInvalidCredentials, auth.ErrEmailExists or
// model.ErrValidation where they apply so they can be shown to the user.
type Backend interface {
	Login(ctx context.Context, email, password string) (Account, error)
	Signup(ctx context.Context, p forms.SignupPayload) (Account, error)
}

// LocalBackend serves account calls from an in-process auth service
type LocalBackend struct {
	Auth *auth.Service
}

func (b LocalBackend) Login(ctx context.Context, email, password string) (Account, error) {
	user, err := b.Auth.Login(ctx, email, password)
	if err != nil {
		return Account{}, err
	}
	return Account{Name: user.Name, Email: user.Email}, nil
}

func (b LocalBackend) Signup(ctx context.Context, p forms.SignupPayload) (Account, error) {
	user, err := b.Auth.Signup(ctx, auth.SignupRequest{
		Name:             p.Name,
		Email:            p.Email,
		Password:         p.Password,
		AgeGroup:         p.AgeGroup,
		StylePreferences: p.StylePreferences,
	})
	if err != nil {
		return Account{}, err
	}
	return Account{Name: user.Name, Email: user.Email}, nil
}
