package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the services. The API layer maps them to
// HTTP status codes with errors.Is.
var (
	// ErrInvalidCredentials indicates the password did not match the account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountNotFound indicates no account matched the login identifier.
	// It is returned wrapped in an *AccountNotFoundError.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTokenRevoked indicates a well-formed, unexpired token that is no
	// longer the latest one issued to its account.
	ErrTokenRevoked = errors.New("token has been superseded")
)

// AccountNotFoundError reports the identifier that failed to match at login.
type AccountNotFoundError struct {
	Identifier string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("user with %s not found", e.Identifier)
}

func (e *AccountNotFoundError) Unwrap() error {
	return ErrAccountNotFound
}
