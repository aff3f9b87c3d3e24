package utils

import (
	"bytes"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"time"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/errors"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/models"
)

const maxBodyBytes = 1 << 20

// DecodeJSONBody reads the request body into dest. Every failure is returned
// as a validation AppError naming the offending field where possible.
func DecodeJSONBody(r *http.Request, dest any) error {

	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return errors.BadRequestError("Failed to read request body").WithError(err)
	}

	if len(body) > maxBodyBytes {
		return errors.BadRequestError("Request body is too large")
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return errors.ValidationError("Request body cannot be empty")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return decodeError(err)
	}

	return nil
}

func decodeError(err error) error {

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case stdErrors.As(err, &syntaxErr):
		return errors.ValidationError("Request body contains malformed JSON").
			WithDetail(fmt.Sprintf("syntax error at offset %d", syntaxErr.Offset)).
			WithError(err)
	case stdErrors.As(err, &typeErr):
		if typeErr.Field == "" {
			return errors.ValidationError("Request body must be a JSON object").WithError(err)
		}
		return errors.AddValidationError(typeErr.Field, "must be "+describeType(typeErr.Type)).WithError(err)
	default:
		return errors.ValidationError("Invalid JSON format").WithError(err)
	}
}

func describeType(t reflect.Type) string {

	if t == nil {
		return "a valid value"
	}

	switch t {
	case reflect.TypeFor[time.Time]():
		return "an RFC 3339 timestamp"
	case reflect.TypeFor[models.Price]():
		return "a number"
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	default:
		return "a valid " + t.String()
	}
}

// ParseID reads an integer path parameter.
func ParseID(r *http.Request, key string) (int64, error) {

	raw := r.PathValue(key)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.BadRequestError(fmt.Sprintf("Invalid %s '%s': must be an integer", key, raw)).WithError(err)
	}

	return id, nil
}
