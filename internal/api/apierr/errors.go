package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/services/auth"
)

// ErrorResponse is the body of every API error
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeMissingFields      = "MISSING_FIELDS"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeInvalidAgeGroup    = "INVALID_AGE_GROUP"
	CodePasswordTooLong    = "PASSWORD_TOO_LONG"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with a code and message
type httpError struct {
	status  int
	code    string
	message string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Success: false, Code: he.code, Message: he.message})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, auth.ErrMissingFields):
		return &httpError{http.StatusBadRequest, CodeMissingFields, "모든 필드를 입력해주세요."}
	case errors.Is(err, auth.ErrInvalidEmail):
		return &httpError{http.StatusBadRequest, CodeInvalidEmail, "올바른 이메일 형식이 아닙니다."}
	case errors.Is(err, auth.ErrInvalidAgeGroup):
		return &httpError{http.StatusBadRequest, CodeInvalidAgeGroup, "올바른 연령대를 선택해주세요."}
	case errors.Is(err, auth.ErrPasswordTooLong):
		return &httpError{http.StatusBadRequest, CodePasswordTooLong, "비밀번호가 너무 깁니다."}
	case errors.Is(err, model.ErrValidation):
		return &httpError{http.StatusBadRequest, CodeInvalidRequest, "잘못된 요청입니다."}
	case errors.Is(err, auth.ErrEmailExists):
		return &httpError{http.StatusConflict, CodeEmailExists, "이미 사용 중인 이메일입니다."}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, CodeInvalidCredentials, "이메일 또는 비밀번호가 올바르지 않습니다."}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, CodeUserNotFound, "사용자를 찾을 수 없습니다."}
	default:
		return &httpError{http.StatusInternalServerError, CodeInternalError, "데이터베이스 처리 중 오류가 발생했습니다."}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, CodeInvalidRequest, message}
}

// NewRateLimitedError creates a too many requests error
func NewRateLimitedError() error {
	return &httpError{http.StatusTooManyRequests, CodeRateLimited, "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, CodeInternalError, "서버 오류가 발생했습니다."}
}
