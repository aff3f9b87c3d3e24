package utils_test

import (
	"strings"
	"testing"

	appErrors "github.com/CSCI-GA-2820-FA25-003/wishlists/internal/errors"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/models"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	validate := utils.NewValidator()

	tests := []struct {
		name    string
		input   any
		message string
	}{
		{
			name:  "Valid",
			input: &models.CreateWishlistRequest{CustomerID: "cust-1", Name: "Books"},
		},
		{
			name:    "Missing Fields Reported Together",
			input:   &models.CreateWishlistRequest{},
			message: "Invalid request: missing required field(s): customer_id, name",
		},
		{
			name:    "Blank",
			input:   &models.CreateWishlistRequest{CustomerID: "cust-1", Name: "\t "},
			message: "Invalid field 'name': must not be blank",
		},
		{
			name:    "Too Long",
			input:   &models.CreateWishlistRequest{CustomerID: "cust-1", Name: "Books", Description: ptr(strings.Repeat("x", 501))},
			message: "Invalid field 'description': must be at most 500 characters",
		},
		{
			name:    "Greater Than",
			input:   &models.Item{ProductID: -1, ProductName: "Lamp"},
			message: "Invalid field 'product_id': must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := utils.ValidateStruct(validate, tt.input)

			// Assert
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}

			appErr, ok := appErrors.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}

	t.Run("Not A Struct", func(t *testing.T) {
		err := utils.ValidateStruct(validate, "nope")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeInternal, appErr.Code)
	})
}

func ptr(s string) *string {
	return &s
}
