package mocks

import (
	"context"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/models"
	"github.com/stretchr/testify/mock"
)

type WishlistRepository struct {
	mock.Mock
}

func (m *WishlistRepository) CreateWishlist(ctx context.Context, wishlist *models.Wishlist) error {
	args := m.Called(ctx, wishlist)
	return args.Error(0)
}

func (m *WishlistRepository) GetWishlistByID(ctx context.Context, id int64) (*models.Wishlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wishlist), args.Error(1)
}

func (m *WishlistRepository) ListWishlists(ctx context.Context, filter models.WishlistFilter) ([]*models.Wishlist, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Wishlist), args.Error(1)
}

func (m *WishlistRepository) UpdateWishlist(ctx context.Context, wishlist *models.Wishlist) error {
	args := m.Called(ctx, wishlist)
	return args.Error(0)
}

func (m *WishlistRepository) DeleteWishlist(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
