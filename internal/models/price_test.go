package models_test

import (
	"encoding/json"
	"testing"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_JSON(t *testing.T) {

	t.Run("Marshal Uses Two Decimals", func(t *testing.T) {
		// Arrange
		item := models.Item{ID: 1, Prices: models.NewPrice(decimal.RequireFromString("19.9"))}

		// Act
		data, err := json.Marshal(item)

		// Assert
		require.NoError(t, err)
		assert.Contains(t, string(data), `"prices":19.90`)
	})

	t.Run("Marshal Null", func(t *testing.T) {
		data, err := json.Marshal(models.Price{})

		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})

	valid := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Number", input: `12.5`, want: "12.50"},
		{name: "Integer", input: `7`, want: "7.00"},
		{name: "Decimal String", input: `"3.999"`, want: "4.00"},
		{name: "Null", input: `null`, want: "null"},
	}

	for _, tt := range valid {
		t.Run("Unmarshal "+tt.name, func(t *testing.T) {
			// Arrange
			var price models.Price

			// Act
			err := json.Unmarshal([]byte(tt.input), &price)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.want, price.String())
		})
	}

	invalid := []struct {
		name  string
		input string
		kind  string
	}{
		{name: "Word", input: `"cheap"`, kind: "string"},
		{name: "Empty String", input: `""`, kind: "string"},
		{name: "Bool", input: `true`, kind: "bool"},
		{name: "Object", input: `{"amount":1}`, kind: "object"},
	}

	for _, tt := range invalid {
		t.Run("Reject "+tt.name, func(t *testing.T) {
			// Arrange
			var price models.Price

			// Act
			err := json.Unmarshal([]byte(tt.input), &price)

			// Assert
			var typeErr *json.UnmarshalTypeError
			require.ErrorAs(t, err, &typeErr)
			assert.Equal(t, tt.kind, typeErr.Value)
		})
	}
}

func TestPrice_SQL(t *testing.T) {

	t.Run("Value", func(t *testing.T) {
		value, err := models.NewPrice(decimal.RequireFromString("10.5")).Value()

		require.NoError(t, err)
		assert.Equal(t, "10.5", value)
	})

	t.Run("Null Value", func(t *testing.T) {
		value, err := models.Price{}.Value()

		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("Scan", func(t *testing.T) {
		var price models.Price

		require.NoError(t, price.Scan("42.10"))
		assert.True(t, price.Valid)
		assert.Equal(t, "42.10", price.String())

		require.NoError(t, price.Scan(nil))
		assert.False(t, price.Valid)
	})

	t.Run("PriceFromString", func(t *testing.T) {
		price, err := models.PriceFromString("0.125")
		require.NoError(t, err)
		assert.Equal(t, "0.13", price.String())

		_, err = models.PriceFromString("abc")
		assert.Error(t, err)
	})
}
