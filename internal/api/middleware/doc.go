// Package middleware holds the HTTP middleware shared by the API routes:
// bearer-token authentication, request tracing and per-client rate limiting.
package middleware
