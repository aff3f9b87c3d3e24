package handlers

import (
	"net/http"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/utils/response"
)

type ServiceInfo struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Paths       map[string]string `json:"paths"`
}

// indexPaths maps each operation to its route relative to the service root.
var indexPaths = map[string]string{
	"list_all_wishlists":   "/wishlists",
	"create_wishlist":      "/wishlists",
	"get_wishlist":         "/wishlists/{wishlist_id}",
	"update_wishlist":      "/wishlists/{wishlist_id}",
	"delete_wishlist":      "/wishlists/{wishlist_id}",
	"clear_wishlist":       "/wishlists/{wishlist_id}/clear",
	"share_wishlist":       "/wishlists/{wishlist_id}/share",
	"list_wishlist_items":  "/wishlists/{wishlist_id}/items",
	"create_wishlist_item": "/wishlists/{wishlist_id}/items",
	"get_wishlist_item":    "/wishlists/{wishlist_id}/items/{item_id}",
	"update_wishlist_item": "/wishlists/{wishlist_id}/items/{item_id}",
	"delete_wishlist_item": "/wishlists/{wishlist_id}/items/{item_id}",
	"health":               "/health",
	"docs":                 "/swagger/index.html",
}

// Index godoc
//	@Summary	Service information
//	@Tags		Index
//	@Produce	json
//	@Success	200	{object}	ServiceInfo
//	@Router		/ [get]
func Index(version, configuredBaseURL string) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		base := baseURL(configuredBaseURL, r)

		paths := make(map[string]string, len(indexPaths))
		for operation, path := range indexPaths {
			paths[operation] = base + path
		}

		response.Success(w, http.StatusOK, ServiceInfo{
			Name:        "Wishlist Service",
			Version:     version,
			Description: "RESTful service for managing customer wishlists and their items",
			Paths:       paths,
		})
	}
}
