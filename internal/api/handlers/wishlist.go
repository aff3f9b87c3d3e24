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

type WishlistHandler struct {
	wishlistService service.WishlistService
	baseURL         string
}

func NewWishlistHandler(wishlistService service.WishlistService, baseURL string) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService, baseURL: baseURL}
}

// CreateWishlist godoc
//	@Summary		Create a wishlist
//	@Description	Creates an empty wishlist for a customer. Names are unique per customer.
//	@Tags			Wishlists
//	@Accept			json
//	@Produce		json
//	@Param			wishlist	body		models.CreateWishlistRequest	true	"Wishlist details"
//	@Success		201			{object}	models.Wishlist					"Wishlist created"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		409			{object}	response.ErrorResponse			"Wishlist name already used by this customer"
//	@Failure		415			{object}	response.ErrorResponse			"Content-Type is not application/json"
//	@Failure		500			{object}	response.ErrorResponse			"Internal server error"
//	@Security		BearerAuth
//	@Router			/wishlists [post]
func (h *WishlistHandler) CreateWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateWishlistRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid create wishlist input", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		wishlist, err := h.wishlistService.CreateWishlist(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create wishlist", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Wishlist created successfully", slog.Int64("wishlistId", wishlist.ID))
		response.Created(w, fmt.Sprintf("%s/wishlists/%d", baseURL(h.baseURL, r), wishlist.ID), wishlist)
	}
}

// ListWishlists godoc
//	@Summary		List wishlists
//	@Description	Lists all wishlists, the wishlists of one customer, or a case-insensitive name search within one customer's wishlists.
//	@Tags			Wishlists
//	@Produce		json
//	@Param			customer_id	query		string					false	"Owner of the wishlists"
//	@Param			name		query		string					false	"Substring of the wishlist name (requires customer_id)"
//	@Success		200			{array}		models.Wishlist			"Matching wishlists"
//	@Failure		400			{object}	response.ErrorResponse	"Unknown query parameter or name without customer_id"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/wishlists [get]
func (h *WishlistHandler) ListWishlists() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		filter, err := parseWishlistFilter(r.URL.Query())
		if err != nil {
			logger.Warn("Invalid wishlist filter", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		wishlists, err := h.wishlistService.ListWishlists(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list wishlists", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Wishlists listed successfully", slog.Int("count", len(wishlists)))
		response.Success(w, http.StatusOK, wishlists)
	}
}

// GetWishlist godoc
//	@Summary		Get a wishlist
//	@Description	Returns a wishlist together with its items.
//	@Tags			Wishlists
//	@Produce		json
//	@Param			wishlist_id	path		int						true	"Wishlist ID"
//	@Success		200			{object}	models.Wishlist			"Wishlist"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid wishlist id"
//	@Failure		404			{object}	response.ErrorResponse	"Wishlist not found"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/wishlists/{wishlist_id} [get]
func (h *WishlistHandler) GetWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "wishlist_id")
		if err != nil {
			logger.Warn("Invalid wishlist id", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		wishlist, err := h.wishlistService.GetWishlist(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get wishlist", slog.Int64("wishlistId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, wishlist)
	}
}

// UpdateWishlist godoc
//	@Summary		Update a wishlist
//	@Description	Partially updates name and description. Only the owner named by X-Customer-Id may update.
//	@Tags			Wishlists
//	@Accept			json
//	@Produce		json
//	@Param			wishlist_id		path		int								true	"Wishlist ID"
//	@Param			X-Customer-Id	header		string							true	"Caller customer id"
//	@Param			wishlist		body		models.UpdateWishlistRequest	true	"Fields to change"
//	@Success		200				{object}	models.Wishlist					"Updated wishlist"
//	@Failure		400				{object}	response.ErrorResponse			"Validation error"
//	@Failure		403				{object}	response.ErrorResponse			"Caller does not own the wishlist"
//	@Failure		404				{object}	response.ErrorResponse			"Wishlist not found"
//	@Failure		409				{object}	response.ErrorResponse			"Name already used by this customer"
//	@Failure		415				{object}	response.ErrorResponse			"Content-Type is not application/json"
//	@Failure		500				{object}	response.ErrorResponse			"Internal server error"
//	@Security		BearerAuth
//	@Router			/wishlists/{wishlist_id} [put]
func (h *WishlistHandler) UpdateWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "wishlist_id")
		if err != nil {
			logger.Warn("Invalid wishlist id", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		caller := middleware.CallerCustomerID(r)
		logger = logger.With(slog.Int64("wishlistId", id), slog.String("callerId", caller))

		// ownership is settled before the payload is looked at
		if _, err := h.wishlistService.AuthorizeOwner(r.Context(), id, caller); err != nil {
			logger.Warn("Wishlist update rejected", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		var req models.UpdateWishlistRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid update wishlist input", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		wishlist, err := h.wishlistService.UpdateWishlist(r.Context(), id, caller, &req)
		if err != nil {
			logger.Error("Failed to update wishlist", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Wishlist updated successfully")
		response.Success(w, http.StatusOK, wishlist)
	}
}

// DeleteWishlist godoc
//	@Summary		Delete a wishlist
//	@Description	Deletes a wishlist and all of its items. Deleting a missing wishlist also returns 204.
//	@Tags			Wishlists
//	@Param			wishlist_id	path	int	true	"Wishlist ID"
//	@Success		204			"Deleted"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid wishlist id"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/wishlists/{wishlist_id} [delete]
func (h *WishlistHandler) DeleteWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "wishlist_id")
		if err != nil {
			logger.Warn("Invalid wishlist id", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if err := h.wishlistService.DeleteWishlist(r.Context(), id); err != nil {
			logger.Error("Failed to delete wishlist", slog.Int64("wishlistId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Wishlist deleted", slog.Int64("wishlistId", id))
		response.NoContent(w)
	}
}

// ClearWishlist godoc
//	@Summary		Remove all items from a wishlist
//	@Tags			Wishlists
//	@Param			wishlist_id	path	int	true	"Wishlist ID"
//	@Success		204			"Cleared"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid wishlist id"
//	@Failure		404			{object}	response.ErrorResponse	"Wishlist not found"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/wishlists/{wishlist_id}/clear [put]
func (h *WishlistHandler) ClearWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "wishlist_id")
		if err != nil {
			logger.Warn("Invalid wishlist id", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		removed, err := h.wishlistService.ClearItems(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to clear wishlist", slog.Int64("wishlistId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Wishlist cleared", slog.Int64("wishlistId", id), slog.Int64("removed", removed))
		response.NoContent(w)
	}
}

// ShareWishlist godoc
//	@Summary		Get a share link
//	@Description	Returns the public URL of the wishlist.
//	@Tags			Wishlists
//	@Produce		json
//	@Param			wishlist_id	path		int						true	"Wishlist ID"
//	@Success		200			{object}	models.ShareLink		"Share link"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid wishlist id"
//	@Failure		404			{object}	response.ErrorResponse	"Wishlist not found"
//	@Router			/wishlists/{wishlist_id}/share [get]
func (h *WishlistHandler) ShareWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "wishlist_id")
		if err != nil {
			logger.Warn("Invalid wishlist id", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		shareURL, err := h.wishlistService.ShareURL(r.Context(), baseURL(h.baseURL, r), id)
		if err != nil {
			logger.Warn("Failed to build share link", slog.Int64("wishlistId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ShareLink{ShareURL: shareURL})
	}
}
