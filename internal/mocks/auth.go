package mocks

import (
	"context"

	"github.com/phrazzld/storefront-api/internal/service/auth"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a testify mock of auth.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(password, hash string) (bool, error) {
	args := m.Called(password, hash)
	return args.Bool(0), args.Error(1)
}

// MockTokenService is a testify mock of auth.TokenService.
type MockTokenService struct {
	mock.Mock
}

var _ auth.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) IssueToken(ctx context.Context, email, username string) (string, error) {
	args := m.Called(ctx, email, username)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	args := m.Called(ctx, token)
	if claims, ok := args.Get(0).(*auth.Claims); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}
