package models

import (
	"encoding/json"
	"errors"
	"reflect"
)

// Optional tracks whether a key was present in a JSON patch body and
// whether it was explicitly null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Value: value}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// Present reports whether the key was supplied with a non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true

	if string(data) == "null" {
		o.Null = true
		return nil
	}

	if err := json.Unmarshal(data, &o.Value); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return typeErr
		}

		return &json.UnmarshalTypeError{Value: jsonKind(data), Type: reflect.TypeFor[T]()}
	}

	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}

	return json.Marshal(o.Value)
}
