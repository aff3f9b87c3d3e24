package service

import (
	"database/sql"
	stdErrors "errors"
	"fmt"
	"html"
	"strings"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/errors"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/models"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

// NUMERIC(10,2) upper bound.
var maxPrice = decimal.New(1, 8)

var textPolicy = bluemonday.StrictPolicy()

// sanitizeText strips markup from free text. Entities escaped by the policy
// are decoded again since the value is stored and served as plain JSON.
func sanitizeText(value string) string {
	return html.UnescapeString(textPolicy.Sanitize(value))
}

func isNotFound(err error) bool {
	return stdErrors.Is(err, sql.ErrNoRows)
}

func wishlistNotFound(id int64) *errors.AppError {
	return errors.NotFoundError(fmt.Sprintf("Wishlist with id '%d' was not found.", id))
}

func itemNotFound(id int64) *errors.AppError {
	return errors.NotFoundError(fmt.Sprintf("Item with id '%d' was not found.", id))
}

func itemNotInWishlist(itemID, wishlistID int64) *errors.AppError {
	return errors.NotFoundError(fmt.Sprintf("Item with id '%d' was not found in Wishlist '%d'.", itemID, wishlistID))
}

func duplicateProduct(productID int64) *errors.AppError {
	return errors.ConflictError(fmt.Sprintf("Item with product_id '%d' already exists in this wishlist.", productID))
}

// persistenceError keeps AppErrors raised inside a transaction and hides
// everything else behind a generic message.
func persistenceError(message string, err error) error {
	if _, ok := errors.IsAppError(err); ok {
		return err
	}

	return errors.DatabaseError(message).WithError(err)
}

func validatePrice(field string, price models.Price) error {
	if !price.Valid {
		return nil
	}

	if price.Decimal.IsNegative() {
		return errors.AddValidationError(field, "must not be negative")
	}

	if price.Decimal.GreaterThanOrEqual(maxPrice) {
		return errors.AddValidationError(field, "must be less than 100000000")
	}

	return nil
}

func joinURL(base string, parts ...string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Join(parts, "/")
}
