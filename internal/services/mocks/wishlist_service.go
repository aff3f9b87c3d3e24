package mocks

import (
	"context"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/models"
	"github.com/stretchr/testify/mock"
)

type WishlistService struct {
	mock.Mock
}

func (m *WishlistService) CreateWishlist(ctx context.Context, req *models.CreateWishlistRequest) (*models.Wishlist, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wishlist), args.Error(1)
}

func (m *WishlistService) GetWishlist(ctx context.Context, id int64) (*models.Wishlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wishlist), args.Error(1)
}

func (m *WishlistService) ListWishlists(ctx context.Context, filter models.WishlistFilter) ([]*models.Wishlist, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Wishlist), args.Error(1)
}

func (m *WishlistService) AuthorizeOwner(ctx context.Context, id int64, callerCustomerID string) (*models.Wishlist, error) {
	args := m.Called(ctx, id, callerCustomerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wishlist), args.Error(1)
}

func (m *WishlistService) UpdateWishlist(ctx context.Context, id int64, callerCustomerID string, req *models.UpdateWishlistRequest) (*models.Wishlist, error) {
	args := m.Called(ctx, id, callerCustomerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wishlist), args.Error(1)
}

func (m *WishlistService) DeleteWishlist(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *WishlistService) ClearItems(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *WishlistService) ShareURL(ctx context.Context, baseURL string, id int64) (string, error) {
	args := m.Called(ctx, baseURL, id)
	return args.String(0), args.Error(1)
}
