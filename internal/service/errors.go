package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Provider Errors =====
var (
	ErrProviderNotFound  = errors.New("provider not found")
	ErrInvalidProviderID = errors.New("invalid provider_id")
)

// ===== User Errors =====
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
)
