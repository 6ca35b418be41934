package mocks

import (
	"context"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a testify mock of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

var _ service.AuthService = (*MockAuthService)(nil)

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, in)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, in service.LoginInput) (*service.LoginResult, error) {
	args := m.Called(ctx, in)
	if res, ok := args.Get(0).(*service.LoginResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUserService is a testify mock of service.UserService.
type MockUserService struct {
	mock.Mock
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) List(ctx context.Context) ([]domain.UserSummary, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]domain.UserSummary); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) UpdateUsername(ctx context.Context, id int64, username string) error {
	args := m.Called(ctx, id, username)
	return args.Error(0)
}

func (m *MockUserService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductService is a testify mock of service.ProductService.
type MockProductService struct {
	mock.Mock
}

var _ service.ProductService = (*MockProductService)(nil)

func (m *MockProductService) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]domain.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*domain.Product); ok {
		return product, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, params domain.NewProductParams) (*domain.Product, error) {
	args := m.Called(ctx, params)
	if product, ok := args.Get(0).(*domain.Product); ok {
		return product, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) Update(
	ctx context.Context,
	id int64,
	patch domain.ProductPatch,
) (*domain.Product, error) {
	args := m.Called(ctx, id, patch)
	if product, ok := args.Get(0).(*domain.Product); ok {
		return product, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenChecker is a testify mock of service.TokenChecker.
type MockTokenChecker struct {
	mock.Mock
}

var _ service.TokenChecker = (*MockTokenChecker)(nil)

func (m *MockTokenChecker) CheckLatest(ctx context.Context, token string, identity domain.Identity) error {
	args := m.Called(ctx, token, identity)
	return args.Error(0)
}
