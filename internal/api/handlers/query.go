package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/errors"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/models"
)

// rejectUnknownParams fails when the query carries keys outside allowed.
func rejectUnknownParams(query url.Values, allowed ...string) error {

	var unknown []string

	for key := range query {
		if !slices.Contains(allowed, key) {
			unknown = append(unknown, key)
		}
	}

	if len(unknown) == 0 {
		return nil
	}

	slices.Sort(unknown)

	return errors.ValidationError(fmt.Sprintf("Unsupported query parameter(s): %s. Allowed: %s",
		strings.Join(unknown, ", "), strings.Join(allowed, ", ")))
}

func parseWishlistFilter(query url.Values) (models.WishlistFilter, error) {

	if err := rejectUnknownParams(query, "customer_id", "name"); err != nil {
		return models.WishlistFilter{}, err
	}

	return models.WishlistFilter{
		CustomerID: strings.TrimSpace(query.Get("customer_id")),
		Name:       strings.TrimSpace(query.Get("name")),
	}, nil
}

func parseItemFilter(query url.Values) (models.ItemFilter, error) {

	if err := rejectUnknownParams(query, "product_id", "product_name"); err != nil {
		return models.ItemFilter{}, err
	}

	filter := models.ItemFilter{
		ProductName: strings.TrimSpace(query.Get("product_name")),
	}

	if raw := strings.TrimSpace(query.Get("product_id")); raw != "" {
		productID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.ItemFilter{}, errors.ValidationError("product_id must be an integer").WithError(err)
		}
		filter.ProductID = &productID
	}

	return filter, nil
}

// baseURL prefers the configured public URL and falls back to the address
// the request came in on.
func baseURL(configured string, r *http.Request) string {

	if configured != "" {
		return strings.TrimRight(configured, "/")
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	switch forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded {
	case "http", "https":
		scheme = forwarded
	}

	host := r.Host
	if host == "" || strings.ContainsAny(host, "/\\@?# ") {
		host = "localhost"
	}

	return scheme + "://" + host
}
