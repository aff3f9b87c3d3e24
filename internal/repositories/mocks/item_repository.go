package mocks

import (
	"context"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/models"
	"github.com/stretchr/testify/mock"
)

type ItemRepository struct {
	mock.Mock
}

func (m *ItemRepository) CreateItem(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *ItemRepository) GetItemByID(ctx context.Context, id int64) (*models.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *ItemRepository) ListItems(ctx context.Context, wishlistID int64, filter models.ItemFilter) ([]models.Item, error) {
	args := m.Called(ctx, wishlistID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *ItemRepository) ListItemsByWishlistIDs(ctx context.Context, wishlistIDs []int64) (map[int64][]models.Item, error) {
	args := m.Called(ctx, wishlistIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]models.Item), args.Error(1)
}

func (m *ItemRepository) ExistsByProduct(ctx context.Context, wishlistID, productID, excludeItemID int64) (bool, error) {
	args := m.Called(ctx, wishlistID, productID, excludeItemID)
	return args.Bool(0), args.Error(1)
}

func (m *ItemRepository) UpdateItem(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *ItemRepository) DeleteItem(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ItemRepository) DeleteItemsByWishlist(ctx context.Context, wishlistID int64) (int64, error) {
	args := m.Called(ctx, wishlistID)
	return args.Get(0).(int64), args.Error(1)
}
