package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"strconv"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/errors"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/metrics"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/models"
	repository "github.com/CSCI-GA-2820-FA25-003/wishlists/internal/repositories"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/utils"
	"github.com/go-playground/validator/v10"
)

type WishlistService interface {
	CreateWishlist(ctx context.Context, req *models.CreateWishlistRequest) (*models.Wishlist, error)
	GetWishlist(ctx context.Context, id int64) (*models.Wishlist, error)
	ListWishlists(ctx context.Context, filter models.WishlistFilter) ([]*models.Wishlist, error)
	AuthorizeOwner(ctx context.Context, id int64, callerCustomerID string) (*models.Wishlist, error)
	UpdateWishlist(ctx context.Context, id int64, callerCustomerID string, req *models.UpdateWishlistRequest) (*models.Wishlist, error)
	DeleteWishlist(ctx context.Context, id int64) error
	ClearItems(ctx context.Context, id int64) (int64, error)
	ShareURL(ctx context.Context, baseURL string, id int64) (string, error)
}

type wishlistService struct {
	store     repository.Store
	validator *validator.Validate
}

func NewWishlistService(store repository.Store) WishlistService {
	return &wishlistService{store: store, validator: utils.NewValidator()}
}

func (s *wishlistService) CreateWishlist(ctx context.Context, req *models.CreateWishlistRequest) (*models.Wishlist, error) {

	input := *req
	input.Name = sanitizeText(input.Name)
	if input.Description != nil {
		description := sanitizeText(*input.Description)
		input.Description = &description
	}

	if err := utils.ValidateStruct(s.validator, &input); err != nil {
		return nil, err
	}

	wishlist := &models.Wishlist{
		CustomerID:  input.CustomerID,
		Name:        input.Name,
		Description: input.Description,
		Items:       []models.Item{},
	}

	if err := s.store.Wishlists().CreateWishlist(ctx, wishlist); err != nil {
		if stdErrors.Is(err, repository.ErrDuplicateEntry) {
			return nil, errors.ConflictError(fmt.Sprintf("Wishlist with name '%s' already exists for customer '%s'.", wishlist.Name, wishlist.CustomerID)).WithError(err)
		}
		return nil, errors.DatabaseError("Failed to create wishlist").WithError(err)
	}

	metrics.RecordOperation("wishlist", "create")

	return wishlist, nil
}

func (s *wishlistService) GetWishlist(ctx context.Context, id int64) (*models.Wishlist, error) {

	wishlist, err := loadWishlist(ctx, s.store, id)
	if err != nil {
		return nil, err
	}

	items, err := s.store.Items().ListItems(ctx, id, models.ItemFilter{})
	if err != nil {
		return nil, errors.DatabaseError("Failed to load wishlist items").WithError(err)
	}

	wishlist.Items = items

	return wishlist, nil
}

// ListWishlists supports three modes: everything, one customer's wishlists,
// and a name search within one customer's wishlists.
func (s *wishlistService) ListWishlists(ctx context.Context, filter models.WishlistFilter) ([]*models.Wishlist, error) {

	if filter.Name != "" && filter.CustomerID == "" {
		return nil, errors.ValidationError("customer_id is required when filtering by name")
	}

	wishlists, err := s.store.Wishlists().ListWishlists(ctx, filter)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list wishlists").WithError(err)
	}

	ids := make([]int64, 0, len(wishlists))
	for _, wishlist := range wishlists {
		ids = append(ids, wishlist.ID)
	}

	grouped, err := s.store.Items().ListItemsByWishlistIDs(ctx, ids)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load wishlist items").WithError(err)
	}

	for _, wishlist := range wishlists {
		wishlist.Items = grouped[wishlist.ID]
		if wishlist.Items == nil {
			wishlist.Items = []models.Item{}
		}
	}

	return wishlists, nil
}

// AuthorizeOwner loads the wishlist and checks that the caller owns it.
func (s *wishlistService) AuthorizeOwner(ctx context.Context, id int64, callerCustomerID string) (*models.Wishlist, error) {

	wishlist, err := loadWishlist(ctx, s.store, id)
	if err != nil {
		return nil, err
	}

	if err := checkOwner(wishlist, callerCustomerID); err != nil {
		return nil, err
	}

	return wishlist, nil
}

func (s *wishlistService) UpdateWishlist(ctx context.Context, id int64, callerCustomerID string, req *models.UpdateWishlistRequest) (*models.Wishlist, error) {

	var updated *models.Wishlist

	err := s.store.WithTx(ctx, func(tx repository.Store) error {

		wishlist, err := loadWishlist(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := checkOwner(wishlist, callerCustomerID); err != nil {
			return err
		}

		if req.Name.Set {
			wishlist.Name = sanitizeText(req.Name.Value)
		}

		if req.Description.Present() {
			description := sanitizeText(req.Description.Value)
			wishlist.Description = &description
		} else if req.Description.Null {
			wishlist.Description = nil
		}

		if err := utils.ValidateStruct(s.validator, wishlist); err != nil {
			return err
		}

		if err := tx.Wishlists().UpdateWishlist(ctx, wishlist); err != nil {
			if stdErrors.Is(err, repository.ErrDuplicateEntry) {
				return errors.ConflictError(fmt.Sprintf("Wishlist with name '%s' already exists for customer '%s'.", wishlist.Name, wishlist.CustomerID)).WithError(err)
			}
			return err
		}

		items, err := tx.Items().ListItems(ctx, id, models.ItemFilter{})
		if err != nil {
			return err
		}

		wishlist.Items = items
		updated = wishlist

		return nil
	})
	if err != nil {
		return nil, persistenceError("Failed to update wishlist", err)
	}

	metrics.RecordOperation("wishlist", "update")

	return updated, nil
}

// DeleteWishlist removes the wishlist and its items. Deleting a missing
// wishlist succeeds.
func (s *wishlistService) DeleteWishlist(ctx context.Context, id int64) error {

	err := s.store.WithTx(ctx, func(tx repository.Store) error {

		if _, err := tx.Items().DeleteItemsByWishlist(ctx, id); err != nil {
			return err
		}

		_, err := tx.Wishlists().DeleteWishlist(ctx, id)

		return err
	})
	if err != nil {
		return persistenceError("Failed to delete wishlist", err)
	}

	metrics.RecordOperation("wishlist", "delete")

	return nil
}

// ClearItems empties an existing wishlist and returns how many items were
// removed.
func (s *wishlistService) ClearItems(ctx context.Context, id int64) (int64, error) {

	var removed int64

	err := s.store.WithTx(ctx, func(tx repository.Store) error {

		if _, err := loadWishlist(ctx, tx, id); err != nil {
			return err
		}

		count, err := tx.Items().DeleteItemsByWishlist(ctx, id)
		if err != nil {
			return err
		}

		removed = count

		return nil
	})
	if err != nil {
		return 0, persistenceError("Failed to clear wishlist", err)
	}

	metrics.RecordOperation("wishlist", "clear")

	return removed, nil
}

func (s *wishlistService) ShareURL(ctx context.Context, baseURL string, id int64) (string, error) {

	if _, err := loadWishlist(ctx, s.store, id); err != nil {
		return "", err
	}

	return joinURL(baseURL, "wishlists", strconv.FormatInt(id, 10)), nil
}

func checkOwner(wishlist *models.Wishlist, callerCustomerID string) error {
	if callerCustomerID == "" || callerCustomerID != wishlist.CustomerID {
		return errors.ForbiddenError("You do not own this wishlist")
	}

	return nil
}
