package auth

import "errors"

// Common authentication errors
var (
	// ErrInvalidToken indicates the token is malformed, its signature doesn't
	// match, or its payload cannot be decoded.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)
