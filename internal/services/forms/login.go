// Package forms holds the client-side state of the login, signup and profile
// forms. Nothing here talks to the backend; submission is left to the caller.
package forms

import (
	"strings"
	"unicode"

	"github.com/blackpdx/ggokka-ot/internal/model"
)

// Password policy
const (
	PasswordMinLength = 8
	PasswordMaxLength = 20
	passwordSpecials  = "!@#$%^&*()_+"
)

// User-facing validation messages
const (
	MsgLoginRequired   = "이메일과 비밀번호를 모두 입력해주세요."
	MsgInvalidEmail    = "유효한 이메일 형식으로 입력해주세요. (예: user@example.com)"
	MsgInvalidPassword = "비밀번호는 8~20자 이내이며, 영문, 숫자, 특수문자를 각각 1개 이상 포함해야 합니다."
)

// ValidationError reports a field that failed client-side validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets errors.Is match model.ErrValidation
func (e *ValidationError) Unwrap() error {
	return model.ErrValidation
}

// LoginForm is the login screen input
type LoginForm struct {
	Email    string
	Password string
}

// Validate checks presence, email format and password policy, in that order
func (f LoginForm) Validate() error {
	if f.Email == "" || f.Password == "" {
		return &ValidationError{Field: "email", Message: MsgLoginRequired}
	}
	if !model.ValidEmail(f.Email) {
		return &ValidationError{Field: "email", Message: MsgInvalidEmail}
	}
	if !ValidPassword(f.Password) {
		return &ValidationError{Field: "password", Message: MsgInvalidPassword}
	}
	return nil
}

// ValidPassword reports whether pw is 8-20 characters drawn from letters,
// digits and !@#$%^&*()_+ with at least one of each class.
func ValidPassword(pw string) bool {
	if len(pw) < PasswordMinLength || len(pw) > PasswordMaxLength {
		return false
	}
	var letter, digit, special bool
	for _, r := range pw {
		switch {
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return letter && digit && special
}

// SanitizeEmail drops Hangul characters typed into the email field
func SanitizeEmail(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Hangul, r) {
			return -1
		}
		return r
	}, s)
}
