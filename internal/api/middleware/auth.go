package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/errors"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
)

const CustomerIDHeader = "X-Customer-Id"

type contextKey string

const ClaimsContextKey = contextKey("claims")

// CustomerClaims are the claims expected in a bearer token. CustomerID, when
// present, identifies the caller for ownership checks.
type CustomerClaims struct {
	CustomerID string `json:"customer_id,omitempty"`
	jwt.RegisteredClaims
}

type AuthMiddleware struct {
	jwtKey []byte
}

// NewAuthMiddleware returns a middleware that verifies HS256 bearer tokens.
// With an empty key every request is let through.
func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {

	return &AuthMiddleware{jwtKey: jwtKey}

}

func (m *AuthMiddleware) Enabled() bool {
	return len(m.jwtKey) > 0
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if !m.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))
			return
		}

		// Token is of format : "Bearer <token>"
		scheme, tokenString, found := strings.Cut(authHeader, " ")

		if !found || scheme != "Bearer" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, errors.UnauthorizedError("Invalid authorization format"))
			return
		}

		claims := &CustomerClaims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			return m.jwtKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || !token.Valid {
			logger.Warn("JWT verification failed", slog.Any("error", err))
			response.Error(w, errors.UnauthorizedError("Invalid or expired token"))
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)

		requestScopedLogger := logger
		if claims.CustomerID != "" {
			requestScopedLogger = logger.With(slog.String("customer_id", claims.CustomerID))
			recordCaller(ctx, claims.CustomerID)
		}
		ctx = WithLogger(ctx, requestScopedLogger)

		requestScopedLogger.Debug("Caller authenticated")

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func ClaimsFromContext(ctx context.Context) (*CustomerClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*CustomerClaims)
	return claims, ok
}

// CallerCustomerID identifies the caller. A verified token claim wins over
// the X-Customer-Id header.
func CallerCustomerID(r *http.Request) string {
	if claims, ok := ClaimsFromContext(r.Context()); ok && claims.CustomerID != "" {
		return claims.CustomerID
	}

	return strings.TrimSpace(r.Header.Get(CustomerIDHeader))
}
