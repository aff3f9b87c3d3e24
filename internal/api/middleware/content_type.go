package middleware

import (
	"log/slog"
	"mime"
	"net/http"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/errors"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/utils/response"
)

// RequireJSON rejects bodies that are not declared as application/json.
// Parameters such as charset are accepted.
func RequireJSON(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		contentType := r.Header.Get("Content-Type")

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			LoggerFromContext(r.Context()).Warn("Unsupported content type", slog.String("content_type", contentType))
			response.Error(w, errors.UnsupportedMediaTypeError("Content-Type must be application/json"))
			return
		}

		next.ServeHTTP(w, r)
	}
}
