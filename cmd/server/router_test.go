package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/storefront-api/internal/config"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/mocks"
	"github.com/phrazzld/storefront-api/internal/service"
	"github.com/phrazzld/storefront-api/internal/service/auth"
)

const testSecret = "router-test-secret-of-at-least-32-characters"

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   4000,
			LogLevel:               "error",
			CORSAllowedOrigins:     []string{"*"},
			ShutdownTimeoutSeconds: 1,
		},
		Database: config.DatabaseConfig{
			URL:          "postgres://localhost:5432/storefront",
			MaxOpenConns: 2,
		},
		Auth: config.AuthConfig{
			JWTSecret:            testSecret,
			TokenLifetimeMinutes: 60,
			BcryptCost:           4,
		},
	}
}

type testApp struct {
	*application
	authSvc    *mocks.MockAuthService
	userSvc    *mocks.MockUserService
	productSvc *mocks.MockProductService
}

func newTestApp(t *testing.T, cfg *config.Config) *testApp {
	t.Helper()
	tokens, err := auth.NewTokenService(cfg.Auth)
	require.NoError(t, err)

	ta := &testApp{
		authSvc:    &mocks.MockAuthService{},
		userSvc:    &mocks.MockUserService{},
		productSvc: &mocks.MockProductService{},
	}
	ta.application = &application{
		config:         cfg,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		tokens:         tokens,
		authService:    ta.authSvc,
		userService:    ta.userSvc,
		productService: ta.productSvc,
	}
	return ta
}

func serve(h http.Handler, method, target, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestRouter_Health(t *testing.T) {
	ta := newTestApp(t, testConfig())
	rec := serve(ta.setupRouter(), http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	ta := newTestApp(t, testConfig())
	rec := serve(ta.setupRouter(), http.MethodGet, "/api/orders", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_GatedRoutesRequireCredentials(t *testing.T) {
	ta := newTestApp(t, testConfig())
	router := ta.setupRouter()

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"create with valid body", http.MethodPost, "/api/products/create", `{"productName":"Lamp","category":"home","price":10}`},
		{"create with invalid body", http.MethodPost, "/api/products/create", `{not json`},
		{"update", http.MethodPut, "/api/products/update/1", `{"price":5}`},
		{"delete", http.MethodDelete, "/api/products/delete/1", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(router, tc.method, tc.target, tc.body, "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Credentials required", body["message"])
		})
	}

	ta.productSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	ta.productSvc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	ta.productSvc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRouter_GatedRouteWithValidToken(t *testing.T) {
	ta := newTestApp(t, testConfig())
	router := ta.setupRouter()

	token, err := ta.tokens.IssueToken(context.Background(), "ann@example.com", "ann")
	require.NoError(t, err)

	ta.productSvc.On("Delete", mock.Anything, int64(3)).Return(nil).Once()

	rec := serve(router, http.MethodDelete, "/api/products/delete/3", "", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Product deleted successfully", body["message"])
	ta.productSvc.AssertExpectations(t)
}

func TestRouter_GatedRouteWithGarbageToken(t *testing.T) {
	ta := newTestApp(t, testConfig())
	rec := serve(ta.setupRouter(), http.MethodDelete, "/api/products/delete/3", "", "not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decodeBody(t, rec)["message"])
}

func TestRouter_PublicRoutesSkipGate(t *testing.T) {
	ta := newTestApp(t, testConfig())
	router := ta.setupRouter()

	ta.productSvc.On("List", mock.Anything).Return([]domain.Product{{ID: 1, ProductName: "Lamp"}}, nil).Once()
	ta.userSvc.On("Delete", mock.Anything, int64(2)).Return(nil).Once()

	rec := serve(router, http.MethodGet, "/api/products", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodDelete, "/api/users/2", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	ta.productSvc.AssertExpectations(t)
	ta.userSvc.AssertExpectations(t)
}

func TestRouter_AuthRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.AuthRateLimitPerMinute = 1
	ta := newTestApp(t, cfg)
	router := ta.setupRouter()

	ta.authSvc.On("Login", mock.Anything, mock.Anything).
		Return(nil, service.ErrInvalidCredentials).Once()

	body := `{"email":"ann@example.com","password":"wrong"}`
	first := serve(router, http.MethodPost, "/api/auth/login", body, "")
	assert.Equal(t, http.StatusUnauthorized, first.Code)

	second := serve(router, http.MethodPost, "/api/auth/login", body, "")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "Too many requests", decodeBody(t, second)["message"])

	// Routes outside /api/auth are not limited.
	ta.productSvc.On("List", mock.Anything).Return([]domain.Product{{ID: 1}}, nil).Twice()
	for i := 0; i < 2; i++ {
		rec := serve(router, http.MethodGet, "/api/products", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	ta.authSvc.AssertExpectations(t)
}

func TestRouter_CORSPreflight(t *testing.T) {
	ta := newTestApp(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/products/create", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	ta.setupRouter().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewApplication(t *testing.T) {
	tests := []struct {
		name        string
		enforce     bool
		wantChecker bool
	}{
		{"latest token not enforced", false, false},
		{"latest token enforced", true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, sqlMock, err := sqlmock.New()
			require.NoError(t, err)

			cfg := testConfig()
			cfg.Auth.EnforceLatestToken = tc.enforce

			app, err := newApplication(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), db)
			require.NoError(t, err)

			assert.NotNil(t, app.authService)
			assert.NotNil(t, app.userService)
			assert.NotNil(t, app.productService)
			assert.NotNil(t, app.tokens)
			assert.Equal(t, tc.wantChecker, app.tokenChecker != nil)

			sqlMock.ExpectClose()
			app.cleanup()
			assert.NoError(t, sqlMock.ExpectationsWereMet())
		})
	}
}

func TestNewApplication_ShortSecret(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := testConfig()
	cfg.Auth.JWTSecret = "short"

	_, err = newApplication(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), db)
	assert.ErrorContains(t, err, "token service")
}
