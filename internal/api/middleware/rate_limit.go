package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/errors"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/metrics"
	repository "github.com/CSCI-GA-2820-FA25-003/wishlists/internal/repositories"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/utils/response"
)

type RateLimiter struct {
	repo repository.RateLimitRepository
}

// NewRateLimiter accepts a nil repository, in which case Limit is a no-op.
func NewRateLimiter(repo repository.RateLimitRepository) *RateLimiter {
	return &RateLimiter{repo: repo}
}

// Limit throttles requests per caller. Limiter failures are logged and the
// request is let through.
func (m *RateLimiter) Limit(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if m.repo == nil {
			next.ServeHTTP(w, r)
			return
		}

		logger := LoggerFromContext(r.Context())
		key := clientKey(r)

		result, err := m.repo.Allow(r.Context(), key)
		if err != nil {
			logger.Error("Rate limit check failed", slog.String("client", key), slog.Any("error", err))
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))

		if !result.Allowed {
			retryAfter := int64(math.Ceil(result.RetryAfter.Seconds()))
			w.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))

			metrics.RecordRateLimited()
			logger.Warn("Rate limit exceeded", slog.String("client", key), slog.Int64("retry_after", retryAfter))
			response.Error(w, errors.TooManyRequestsError("Too many requests, please retry later"))
			return
		}

		next.ServeHTTP(w, r)
	}
}

// clientKey buckets by customer only when the id comes from a verified token.
// The X-Customer-Id header is client controlled and never picks the bucket.
func clientKey(r *http.Request) string {
	if claims, ok := ClaimsFromContext(r.Context()); ok && claims.CustomerID != "" {
		return "customer:" + claims.CustomerID
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	return "ip:" + host
}
