// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request logging, New Relic tracing, CORS
// and panic recovery
package middleware
