package handler

import (
	"net/http"

	"github.com/blackpdx/ggokka-ot/internal/api/apierr"
)

// ErrorResponse re-exports the API error body
type ErrorResponse = apierr.ErrorResponse

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}
