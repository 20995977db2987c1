// Package model defines domain entities and data structures for the Localprint API.
//
// The model package contains all struct definitions for domain objects,
// request types, and error definitions. Models are used across all layers
// of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: A neighbor registered with the platform
//   - Provider: A person offering their home printer, shown as one listing
//   - Review: A 1-5 star rating plus optional comment tied to one Provider
//   - PrintRequest: A contact request expressing interest in a Provider's printer
//
// Each entity is stored in its own collection. Review and PrintRequest carry a
// weak back-reference (a provider_id string) to the Provider they belong to;
// the Provider does not structurally own them.
//
// # Validation
//
// Create request types implement Validate() []FieldError. Validation is total:
// every field is checked and every violation reported, so a caller gets the
// complete error list in one round trip.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type   string `json:"type"`
//	    Title  string `json:"title"`
//	    Status int    `json:"status"`
//	    Detail string `json:"detail"`
//	}
package model
