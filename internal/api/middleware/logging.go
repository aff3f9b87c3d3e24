package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type logContextKey string

const (
	LoggerKey = logContextKey("logger")
	callerKey = logContextKey("caller")
)

// requestCaller is filled in by the auth middleware further down the chain so
// the completion log can name the verified customer.
type requestCaller struct {
	customerID string
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logging attaches a request-scoped logger carrying a correlation id and logs
// the start and end of every request. The completion line also carries the
// matched route and the calling customer, when known.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()

		// Correlation ID
		correlationID := r.Header.Get("X-Request-ID")
		if correlationID == "" {
			correlationID = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", correlationID)

		requestLogger := slog.Default().With(
			slog.String("correlation_id", correlationID),
			slog.String("http_method", r.Method),
			slog.String("http_path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("user_agent", r.UserAgent()),
		)

		requestLogger.Info("Incoming request")

		caller := &requestCaller{}
		ctx := context.WithValue(r.Context(), LoggerKey, requestLogger)
		ctx = context.WithValue(ctx, callerKey, caller)

		rw := newResponseWriter(w)

		// ServeMux records the matched pattern on the request it is handed.
		req := r.WithContext(ctx)
		next.ServeHTTP(rw, req)

		route := req.Pattern
		if route == "" {
			route = "unmatched"
		}

		customerID := caller.customerID
		if customerID == "" {
			customerID = CallerCustomerID(req)
		}

		attrs := []any{
			slog.Int("http_status", rw.statusCode),
			slog.String("http_route", route),
			slog.Duration("duration", time.Since(start)),
		}
		if customerID != "" {
			attrs = append(attrs, slog.String("customer_id", customerID))
		}

		requestLogger.Info("Request Completed", attrs...)

	})
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*slog.Logger); ok {
		return logger
	}

	return slog.Default()
}

// recordCaller notes the verified customer for the completion log.
func recordCaller(ctx context.Context, customerID string) {
	if caller, ok := ctx.Value(callerKey).(*requestCaller); ok {
		caller.customerID = customerID
	}
}

// WithLogger replaces the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}
