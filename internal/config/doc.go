// Package config manages application configuration for the Localprint API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single source
// of truth. A .env file, when present, is loaded automatically via godotenv
// before the environment is read.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - RateLimitConfig: Request rate limiting settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT           - HTTP server port (default: 8080)
//	SERVER_ENV            - development, production, or test
//	CORS_ALLOWED_ORIGINS  - Comma-separated list of allowed origins
//	DB_HOST               - SurrealDB host
//	DB_PORT               - SurrealDB port
//	DB_NAMESPACE          - Database namespace
//	DB_DATABASE           - Database name
//	DB_USER               - Database username
//	DB_PASSWORD           - Database password
//	RATE_LIMIT_RPM        - Requests per minute per client
package config
