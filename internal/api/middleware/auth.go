package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/storefront-api/internal/api/shared"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/redact"
	"github.com/phrazzld/storefront-api/internal/service"
	"github.com/phrazzld/storefront-api/internal/service/auth"
)

// Messages returned by the gate, always with 401.
const (
	MsgCredentialsRequired = "Credentials required"
	MsgTokenExpired        = "Token expired"
	MsgInvalidToken        = "Invalid token"
)

// AuthMiddleware rejects requests that do not carry a valid bearer token.
type AuthMiddleware struct {
	tokens  auth.TokenService
	checker service.TokenChecker
}

// NewAuthMiddleware creates the gate. When checker is non-nil, a token is
// also rejected unless it is the latest one stored for its account.
func NewAuthMiddleware(tokens auth.TokenService, checker service.TokenChecker) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:  tokens,
		checker: checker,
	}
}

// Authenticate runs before any body parsing, so a request without
// credentials is rejected whatever its body contains.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgCredentialsRequired)
			return
		}

		claims, err := m.tokens.ValidateToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, MsgTokenExpired)
				return
			}
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidToken)
			return
		}

		identity, err := claims.Identity()
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidToken)
			return
		}

		if m.checker != nil {
			if err := m.checker.CheckLatest(r.Context(), token, identity); err != nil {
				if errors.Is(err, service.ErrTokenRevoked) {
					shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidToken)
					return
				}
				logger.FromContext(r.Context()).Error("failed to check token freshness",
					slog.String("error", redact.Error(err)))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(shared.WithIdentity(r.Context(), identity)))
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || scheme != "Bearer" {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
