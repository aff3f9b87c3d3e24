package mocks

import (
	"context"

	repository "github.com/CSCI-GA-2820-FA25-003/wishlists/internal/repositories"
)

// Store hands out the mocked repositories and runs WithTx inline. CommitErr,
// when set, is returned after fn succeeds to simulate a failed commit.
type Store struct {
	WishlistRepo *WishlistRepository
	ItemRepo     *ItemRepository
	CommitErr    error
	TxCount      int
}

func NewStore() *Store {
	return &Store{WishlistRepo: new(WishlistRepository), ItemRepo: new(ItemRepository)}
}

func (s *Store) Wishlists() repository.WishlistRepository {
	return s.WishlistRepo
}

func (s *Store) Items() repository.ItemRepository {
	return s.ItemRepo
}

func (s *Store) WithTx(_ context.Context, fn func(tx repository.Store) error) error {
	s.TxCount++

	if err := fn(s); err != nil {
		return err
	}

	return s.CommitErr
}
