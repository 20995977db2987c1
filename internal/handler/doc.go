// Package handler provides HTTP request handlers for the Localprint API.
//
// The handler package contains all HTTP endpoint implementations organized by
// domain. Each handler struct encapsulates the service it needs to serve
// requests for one feature area (providers, reviews, print requests, users).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service dependency
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses via MapServiceError
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource
//   - WriteCollection: List of resources
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Status Mapping
//
// Service failures map to HTTP statuses centrally: validation errors to 422,
// malformed references to 400, missing records to 404, duplicate records to
// 409, an unreachable store to 503, everything else to 500.
package handler
