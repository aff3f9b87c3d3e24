package mocks

import (
	"context"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/models"
	"github.com/stretchr/testify/mock"
)

type ItemService struct {
	mock.Mock
}

func (m *ItemService) CreateItem(ctx context.Context, wishlistID int64, req *models.CreateItemRequest) (*models.Item, error) {
	args := m.Called(ctx, wishlistID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *ItemService) GetItem(ctx context.Context, wishlistID, itemID int64) (*models.Item, error) {
	args := m.Called(ctx, wishlistID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *ItemService) ListItems(ctx context.Context, wishlistID int64, filter models.ItemFilter) ([]models.Item, error) {
	args := m.Called(ctx, wishlistID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *ItemService) UpdateItem(ctx context.Context, wishlistID, itemID int64, req *models.UpdateItemRequest) (*models.Item, error) {
	args := m.Called(ctx, wishlistID, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *ItemService) DeleteItem(ctx context.Context, wishlistID, itemID int64) error {
	args := m.Called(ctx, wishlistID, itemID)
	return args.Error(0)
}
