// Package middleware provides HTTP middleware for the Localprint API.
//
// The middleware package contains reusable components for request processing:
// request identification, structured request logging, panic recovery, CORS,
// response compression, and rate limiting. The API is unauthenticated, so
// there is no auth middleware; rate limiting keys on the client address.
//
// # Composition
//
// Middleware composes via Chain, outermost first:
//
//	handler := middleware.Chain(mux,
//		middleware.RequestID,
//		middleware.Logger,
//		middleware.Recovery,
//		middleware.CORS(origins),
//		middleware.RateLimit(limiter),
//		middleware.Compress,
//	)
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(ctx): Returns the unique request identifier
package middleware
