package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Store groups the repositories so that a service can run several of them
// inside one transaction.
type Store interface {
	Wishlists() WishlistRepository
	Items() ItemRepository
	// WithTx runs fn in a transaction. fn receives a Store bound to the
	// transaction; returning an error rolls it back.
	WithTx(ctx context.Context, fn func(tx Store) error) error
}

type sqlStore struct {
	db   *sql.DB
	conn DBTX
}

func NewStore(db *sql.DB) Store {
	return &sqlStore{db: db, conn: db}
}

func (s *sqlStore) Wishlists() WishlistRepository {
	return NewWishlistRepo(s.conn)
}

func (s *sqlStore) Items() ItemRepository {
	return NewItemRepo(s.conn)
}

func (s *sqlStore) WithTx(ctx context.Context, fn func(tx Store) error) error {

	// nested calls join the surrounding transaction
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&sqlStore{conn: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("rolling back transaction: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
