package models

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/shopspring/decimal"
)

// Price is a NUMERIC(10,2) amount. An invalid Price is stored as NULL and
// rendered as JSON null.
type Price struct {
	decimal.NullDecimal
}

func NewPrice(amount decimal.Decimal) Price {
	return Price{decimal.NullDecimal{Decimal: amount.Round(2), Valid: true}}
}

func PriceFromString(value string) (Price, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return Price{}, err
	}

	return NewPrice(amount), nil
}

func (p Price) String() string {
	if !p.Valid {
		return "null"
	}

	return p.Decimal.StringFixed(2)
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}

	return []byte(p.Decimal.StringFixed(2)), nil
}

// UnmarshalJSON accepts a JSON number, a decimal string or null.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*p = Price{}
		return nil
	}

	raw := data
	if len(data) > 1 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return priceTypeError(data)
		}
		raw = []byte(s)
	}

	price, err := PriceFromString(string(raw))
	if err != nil {
		return priceTypeError(data)
	}

	*p = price

	return nil
}

func priceTypeError(data []byte) error {
	return &json.UnmarshalTypeError{
		Value: jsonKind(data),
		Type:  reflect.TypeFor[Price](),
	}
}

func jsonKind(data []byte) string {
	if len(data) == 0 {
		return "value"
	}

	switch data[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	default:
		return "number"
	}
}
