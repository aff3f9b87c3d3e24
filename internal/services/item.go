package service

import (
	"context"
	stdErrors "errors"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/errors"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/metrics"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/models"
	repository "github.com/CSCI-GA-2820-FA25-003/wishlists/internal/repositories"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/utils"
	"github.com/go-playground/validator/v10"
)

type ItemService interface {
	CreateItem(ctx context.Context, wishlistID int64, req *models.CreateItemRequest) (*models.Item, error)
	GetItem(ctx context.Context, wishlistID, itemID int64) (*models.Item, error)
	ListItems(ctx context.Context, wishlistID int64, filter models.ItemFilter) ([]models.Item, error)
	UpdateItem(ctx context.Context, wishlistID, itemID int64, req *models.UpdateItemRequest) (*models.Item, error)
	DeleteItem(ctx context.Context, wishlistID, itemID int64) error
}

type itemService struct {
	store     repository.Store
	validator *validator.Validate
}

func NewItemService(store repository.Store) ItemService {
	return &itemService{store: store, validator: utils.NewValidator()}
}

// CreateItem checks the wishlist first, then the payload, then the
// (wishlist, product) uniqueness.
func (s *itemService) CreateItem(ctx context.Context, wishlistID int64, req *models.CreateItemRequest) (*models.Item, error) {

	var created *models.Item

	err := s.store.WithTx(ctx, func(tx repository.Store) error {

		wishlist, err := loadWishlist(ctx, tx, wishlistID)
		if err != nil {
			return err
		}

		item, err := s.newItem(wishlist, req)
		if err != nil {
			return err
		}

		exists, err := tx.Items().ExistsByProduct(ctx, wishlistID, item.ProductID, 0)
		if err != nil {
			return err
		}
		if exists {
			return duplicateProduct(item.ProductID)
		}

		if err := tx.Items().CreateItem(ctx, item); err != nil {
			if stdErrors.Is(err, repository.ErrDuplicateEntry) {
				return duplicateProduct(item.ProductID).WithError(err)
			}
			return err
		}

		created = item

		return nil
	})
	if err != nil {
		return nil, persistenceError("Failed to create item", err)
	}

	metrics.RecordOperation("item", "create")

	return created, nil
}

func (s *itemService) newItem(wishlist *models.Wishlist, req *models.CreateItemRequest) (*models.Item, error) {

	var missing []string

	if req.ProductID == nil {
		missing = append(missing, "product_id")
	}
	if req.ProductName == nil {
		missing = append(missing, "product_name")
	}
	if req.PriceValue() == nil {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return nil, errors.MissingFieldsError(missing)
	}

	item := &models.Item{
		WishlistID:  wishlist.ID,
		CustomerID:  wishlist.CustomerID,
		ProductID:   *req.ProductID,
		ProductName: sanitizeText(*req.ProductName),
		Prices:      *req.PriceValue(),
	}

	if err := s.validateItem(item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, wishlistID, itemID int64) (*models.Item, error) {
	return loadWishlistItem(ctx, s.store, wishlistID, itemID)
}

func (s *itemService) ListItems(ctx context.Context, wishlistID int64, filter models.ItemFilter) ([]models.Item, error) {

	if _, err := loadWishlist(ctx, s.store, wishlistID); err != nil {
		return nil, err
	}

	items, err := s.store.Items().ListItems(ctx, wishlistID, filter)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list items").WithError(err)
	}

	return items, nil
}

func (s *itemService) UpdateItem(ctx context.Context, wishlistID, itemID int64, req *models.UpdateItemRequest) (*models.Item, error) {

	var updated *models.Item

	err := s.store.WithTx(ctx, func(tx repository.Store) error {

		item, err := loadWishlistItem(ctx, tx, wishlistID, itemID)
		if err != nil {
			return err
		}

		productChanged, err := applyItemPatch(item, req)
		if err != nil {
			return err
		}

		if err := s.validateItem(item); err != nil {
			return err
		}

		if productChanged {
			exists, err := tx.Items().ExistsByProduct(ctx, wishlistID, item.ProductID, item.ID)
			if err != nil {
				return err
			}
			if exists {
				return duplicateProduct(item.ProductID)
			}
		}

		if err := tx.Items().UpdateItem(ctx, item); err != nil {
			if stdErrors.Is(err, repository.ErrDuplicateEntry) {
				return duplicateProduct(item.ProductID).WithError(err)
			}
			return err
		}

		updated = item

		return nil
	})
	if err != nil {
		return nil, persistenceError("Failed to update item", err)
	}

	metrics.RecordOperation("item", "update")

	return updated, nil
}

// applyItemPatch copies the supplied keys onto item and reports whether the
// product id changed. A null price clears it; other fields may not be null.
func applyItemPatch(item *models.Item, req *models.UpdateItemRequest) (bool, error) {

	productChanged := false

	if req.ProductID.Set {
		if req.ProductID.Null {
			return false, errors.AddValidationError("product_id", "must not be null")
		}
		productChanged = req.ProductID.Value != item.ProductID
		item.ProductID = req.ProductID.Value
	}

	if req.ProductName.Set {
		if req.ProductName.Null {
			return false, errors.AddValidationError("product_name", "must not be null")
		}
		item.ProductName = sanitizeText(req.ProductName.Value)
	}

	if price := req.PriceValue(); price.Present() {
		item.Prices = models.NewPrice(price.Value.Decimal)
	} else if price.Null {
		item.Prices = models.Price{}
	}

	if req.WishDate.Set {
		if req.WishDate.Null {
			return false, errors.AddValidationError("wish_date", "must not be null")
		}
		item.WishDate = req.WishDate.Value
	}

	return productChanged, nil
}

// DeleteItem is idempotent. An item that is missing or belongs to another
// wishlist is left alone and the call still succeeds.
func (s *itemService) DeleteItem(ctx context.Context, wishlistID, itemID int64) error {

	deleted := false

	err := s.store.WithTx(ctx, func(tx repository.Store) error {

		item, err := tx.Items().GetItemByID(ctx, itemID)
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return err
		}

		if item.WishlistID != wishlistID {
			return nil
		}

		deleted, err = tx.Items().DeleteItem(ctx, itemID)

		return err
	})
	if err != nil {
		return persistenceError("Failed to delete item", err)
	}

	if deleted {
		metrics.RecordOperation("item", "delete")
	}

	return nil
}

func (s *itemService) validateItem(item *models.Item) error {

	if err := utils.ValidateStruct(s.validator, item); err != nil {
		return err
	}

	return validatePrice("price", item.Prices)
}

func loadWishlist(ctx context.Context, store repository.Store, id int64) (*models.Wishlist, error) {

	wishlist, err := store.Wishlists().GetWishlistByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, wishlistNotFound(id).WithError(err)
		}
		return nil, errors.DatabaseError("Failed to get wishlist").WithError(err)
	}

	return wishlist, nil
}

// loadWishlistItem resolves an item through its wishlist and reports which
// of the two is missing.
func loadWishlistItem(ctx context.Context, store repository.Store, wishlistID, itemID int64) (*models.Item, error) {

	if _, err := loadWishlist(ctx, store, wishlistID); err != nil {
		return nil, err
	}

	item, err := store.Items().GetItemByID(ctx, itemID)
	if err != nil {
		if isNotFound(err) {
			return nil, itemNotFound(itemID).WithError(err)
		}
		return nil, errors.DatabaseError("Failed to get item").WithError(err)
	}

	if item.WishlistID != wishlistID {
		return nil, itemNotInWishlist(itemID, wishlistID)
	}

	return item, nil
}
