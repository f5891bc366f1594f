package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email is already registered")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Navigation errors
	ErrInvalidTransition = errors.New("event is not valid for the current screen")
	ErrNoPredecessor     = errors.New("screen has no predecessor")
	ErrScreenUnavailable = errors.New("screen is not available yet")

	// Catalog errors
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownOccasion = errors.New("unknown occasion")
	ErrUnknownPeriod   = errors.New("unknown period")

	// Analysis errors
	ErrAnalysisInProgress = errors.New("analysis already in progress")
)
