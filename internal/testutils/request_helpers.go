package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/api/middleware"
)

// CreateTestRequestWithClaims builds a request as it would look after the
// auth middleware accepted a token issued to customerID.
func CreateTestRequestWithClaims(method, target string, body io.Reader, customerID string, pathParams map[string]string) *http.Request {
	req := CreateTestRequestWithoutContext(method, target, body, pathParams)

	claims := &middleware.CustomerClaims{CustomerID: customerID}
	ctx := context.WithValue(req.Context(), middleware.ClaimsContextKey, claims)

	return req.WithContext(ctx)
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

// JSONBody is a shorthand for literal request payloads.
func JSONBody(raw string) io.Reader {
	return strings.NewReader(raw)
}
