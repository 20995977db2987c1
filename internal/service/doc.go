// Package service implements the business logic layer for the Localprint API.
//
// The service package contains all domain logic, validation rules, and
// orchestration of repository operations. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// # Reference Validation
//
// Reviews and print requests both reference a provider. The shared
// resolveProvider helper checks the reference in two stages: first that the
// id is well-formed for the store, then that it resolves to an existing
// record. The two failure modes stay distinct (ErrInvalidProviderID vs
// ErrProviderNotFound) so the boundary can report 400 vs 404.
package service
