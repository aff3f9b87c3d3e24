package mocks

import (
	"context"

	repository "github.com/CSCI-GA-2820-FA25-003/wishlists/internal/repositories"
	"github.com/stretchr/testify/mock"
)

type RateLimitRepository struct {
	mock.Mock
}

func (m *RateLimitRepository) Allow(ctx context.Context, clientKey string) (*repository.RateLimitResult, error) {
	args := m.Called(ctx, clientKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RateLimitResult), args.Error(1)
}
