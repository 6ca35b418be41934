package auth

import (
	"context"
	"time"

	"github.com/phrazzld/storefront-api/internal/domain"
)

// TokenService issues and validates bearer tokens.
type TokenService interface {
	// IssueToken signs a token carrying the encoded identity.
	IssueToken(ctx context.Context, email, username string) (string, error)

	// ValidateToken checks the signature and expiry of token.
	// Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

// Claims are the verified contents of a token.
type Claims struct {
	// Data is the encoded identity, see EncodePayload.
	Data      string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// Identity decodes Data.
func (c *Claims) Identity() (domain.Identity, error) {
	return DecodePayload(c.Data)
}
