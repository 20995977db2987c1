// Package repository implements the data access layer for the Localprint API.
//
// The repository package contains all database operations using SurrealDB.
// Each repository struct handles the operations for a specific collection.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods implement specific data operations (Create, GetByID, List, ...)
//   - SurrealQL queries are used for all database interactions
//   - Results are parsed and mapped to model structs
//
// # Identifiers
//
// SurrealDB record ids are flattened to opaque "table:ident" strings at this
// boundary; nothing above the repository layer sees the driver's RecordID
// type. Reviews and print requests store provider_id as a plain string field
// (a weak reference), not as a record link.
//
// # Query Patterns
//
// Common query patterns used:
//
//   - Parameterized queries with $variable syntax for security
//   - type::record() for safe ID handling
//   - time::now() for automatic timestamps
//
// # Example Usage
//
//	repo := NewProviderRepository(db)
//	provider, err := repo.GetByID(ctx, "provider:abc123")
//	if err != nil {
//	    return err
//	}
//	if provider == nil {
//	    // Handle not found
//	}
package repository
