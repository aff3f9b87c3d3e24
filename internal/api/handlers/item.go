package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/api/middleware"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/models"
	service "github.com/CSCI-GA-2820-FA25-003/wishlists/internal/services"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/utils"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/utils/response"
)

type ItemHandler struct {
	itemService service.ItemService
	baseURL     string
}

func NewItemHandler(itemService service.ItemService, baseURL string) *ItemHandler {
	return &ItemHandler{itemService: itemService, baseURL: baseURL}
}

func parseItemPath(r *http.Request) (wishlistID, itemID int64, err error) {

	if wishlistID, err = utils.ParseID(r, "wishlist_id"); err != nil {
		return 0, 0, err
	}

	if itemID, err = utils.ParseID(r, "item_id"); err != nil {
		return 0, 0, err
	}

	return wishlistID, itemID, nil
}

// CreateItem godoc
//	@Summary		Add an item to a wishlist
//	@Description	A product may appear at most once per wishlist. Either "price" or "prices" is accepted.
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Param			wishlist_id	path		int							true	"Wishlist ID"
//	@Param			item		body		models.CreateItemRequest	true	"Item details"
//	@Success		201			{object}	models.Item					"Item created"
//	@Failure		400			{object}	response.ErrorResponse		"Validation error"
//	@Failure		404			{object}	response.ErrorResponse		"Wishlist not found"
//	@Failure		409			{object}	response.ErrorResponse		"Product already in the wishlist"
//	@Failure		415			{object}	response.ErrorResponse		"Content-Type is not application/json"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/wishlists/{wishlist_id}/items [post]
func (h *ItemHandler) CreateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		wishlistID, err := utils.ParseID(r, "wishlist_id")
		if err != nil {
			logger.Warn("Invalid wishlist id", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		var req models.CreateItemRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid create item input", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		item, err := h.itemService.CreateItem(r.Context(), wishlistID, &req)
		if err != nil {
			logger.Error("Failed to create item", slog.Int64("wishlistId", wishlistID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item created successfully",
			slog.Int64("wishlistId", wishlistID),
			slog.Int64("itemId", item.ID),
			slog.Int64("productId", item.ProductID))

		location := fmt.Sprintf("%s/wishlists/%d/items/%d", baseURL(h.baseURL, r), wishlistID, item.ID)
		response.Created(w, location, item)
	}
}

// ListItems godoc
//	@Summary		List the items of a wishlist
//	@Tags			Items
//	@Produce		json
//	@Param			wishlist_id		path		int						true	"Wishlist ID"
//	@Param			product_id		query		int						false	"Exact product id"
//	@Param			product_name	query		string					false	"Substring of the product name"
//	@Success		200				{array}		models.Item				"Items"
//	@Failure		400				{object}	response.ErrorResponse	"Invalid id or query parameter"
//	@Failure		404				{object}	response.ErrorResponse	"Wishlist not found"
//	@Failure		500				{object}	response.ErrorResponse	"Internal server error"
//	@Router			/wishlists/{wishlist_id}/items [get]
func (h *ItemHandler) ListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		wishlistID, err := utils.ParseID(r, "wishlist_id")
		if err != nil {
			logger.Warn("Invalid wishlist id", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		filter, err := parseItemFilter(r.URL.Query())
		if err != nil {
			logger.Warn("Invalid item filter", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		items, err := h.itemService.ListItems(r.Context(), wishlistID, filter)
		if err != nil {
			logger.Warn("Failed to list items", slog.Int64("wishlistId", wishlistID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, items)
	}
}

// GetItem godoc
//	@Summary		Get an item
//	@Tags			Items
//	@Produce		json
//	@Param			wishlist_id	path		int						true	"Wishlist ID"
//	@Param			item_id		path		int						true	"Item ID"
//	@Success		200			{object}	models.Item				"Item"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid id"
//	@Failure		404			{object}	response.ErrorResponse	"Wishlist or item not found"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/wishlists/{wishlist_id}/items/{item_id} [get]
func (h *ItemHandler) GetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		wishlistID, itemID, err := parseItemPath(r)
		if err != nil {
			logger.Warn("Invalid item path", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		item, err := h.itemService.GetItem(r.Context(), wishlistID, itemID)
		if err != nil {
			logger.Warn("Failed to get item",
				slog.Int64("wishlistId", wishlistID),
				slog.Int64("itemId", itemID),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, item)
	}
}

// UpdateItem godoc
//	@Summary		Update an item
//	@Description	Partially updates an item. A null price clears it.
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Param			wishlist_id	path		int							true	"Wishlist ID"
//	@Param			item_id		path		int							true	"Item ID"
//	@Param			item		body		models.UpdateItemRequest	true	"Fields to change"
//	@Success		200			{object}	models.Item					"Updated item"
//	@Failure		400			{object}	response.ErrorResponse		"Validation error"
//	@Failure		404			{object}	response.ErrorResponse		"Wishlist or item not found"
//	@Failure		409			{object}	response.ErrorResponse		"Product already in the wishlist"
//	@Failure		415			{object}	response.ErrorResponse		"Content-Type is not application/json"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/wishlists/{wishlist_id}/items/{item_id} [put]
func (h *ItemHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		wishlistID, itemID, err := parseItemPath(r)
		if err != nil {
			logger.Warn("Invalid item path", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.Int64("wishlistId", wishlistID), slog.Int64("itemId", itemID))

		var req models.UpdateItemRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid update item input", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		item, err := h.itemService.UpdateItem(r.Context(), wishlistID, itemID, &req)
		if err != nil {
			logger.Error("Failed to update item", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item updated successfully")
		response.Success(w, http.StatusOK, item)
	}
}

// DeleteItem godoc
//	@Summary		Remove an item from a wishlist
//	@Description	Removing an item that does not exist also returns 204.
//	@Tags			Items
//	@Param			wishlist_id	path	int	true	"Wishlist ID"
//	@Param			item_id		path	int	true	"Item ID"
//	@Success		204			"Deleted"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid id"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/wishlists/{wishlist_id}/items/{item_id} [delete]
func (h *ItemHandler) DeleteItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		wishlistID, itemID, err := parseItemPath(r)
		if err != nil {
			logger.Warn("Invalid item path", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if err := h.itemService.DeleteItem(r.Context(), wishlistID, itemID); err != nil {
			logger.Error("Failed to delete item",
				slog.Int64("wishlistId", wishlistID),
				slog.Int64("itemId", itemID),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item deleted", slog.Int64("wishlistId", wishlistID), slog.Int64("itemId", itemID))
		response.NoContent(w)
	}
}
