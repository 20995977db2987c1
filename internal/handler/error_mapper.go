package handler

import (
	"errors"

	"github.com/localprint/api/internal/database"
	"github.com/localprint/api/internal/model"
	"github.com/localprint/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	// Validation failures already arrive as fully-formed Problem Details.
	var pd *model.ProblemDetails
	if errors.As(err, &pd) {
		return pd
	}

	switch {
	// ===== Malformed Input → 400 =====
	case errors.Is(err, service.ErrInvalidProviderID):
		return model.NewBadRequestError(err.Error())

	// ===== Not Found → 404 =====
	case errors.Is(err, service.ErrProviderNotFound):
		return model.NewNotFoundError("provider")

	// ===== Conflict → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return model.NewConflictError(err.Error())

	// ===== Store Unreachable → 503 =====
	case errors.Is(err, database.ErrConnection):
		return model.NewServiceUnavailableError("")

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
