package repository_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	repository "github.com/CSCI-GA-2820-FA25-003/wishlists/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreWithTx(t *testing.T) {
	clearSQL := regexp.QuoteMeta(`DELETE FROM items WHERE wishlist_id = $1`)

	t.Run("Commits On Success", func(t *testing.T) {
		// Arrange
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		store := repository.NewStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(clearSQL).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		// Act
		var removed int64
		err = store.WithTx(t.Context(), func(tx repository.Store) error {
			var txErr error
			removed, txErr = tx.Items().DeleteItemsByWishlist(t.Context(), 1)
			return txErr
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rolls Back On Error", func(t *testing.T) {
		// Arrange
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		store := repository.NewStore(db)
		fnErr := errors.New("not allowed")

		mock.ExpectBegin()
		mock.ExpectRollback()

		// Act
		err = store.WithTx(t.Context(), func(tx repository.Store) error {
			return fnErr
		})

		// Assert
		assert.ErrorIs(t, err, fnErr)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback Failure Is Joined", func(t *testing.T) {
		// Arrange
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		store := repository.NewStore(db)
		fnErr := errors.New("not allowed")
		rbErr := errors.New("connection reset")

		mock.ExpectBegin()
		mock.ExpectRollback().WillReturnError(rbErr)

		// Act
		err = store.WithTx(t.Context(), func(tx repository.Store) error {
			return fnErr
		})

		// Assert
		assert.ErrorIs(t, err, fnErr)
		assert.ErrorIs(t, err, rbErr)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Commit Failure", func(t *testing.T) {
		// Arrange
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		store := repository.NewStore(db)
		commitErr := errors.New("serialization failure")

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(commitErr)

		// Act
		err = store.WithTx(t.Context(), func(tx repository.Store) error {
			return nil
		})

		// Assert
		assert.ErrorIs(t, err, commitErr)
		assert.Contains(t, err.Error(), "committing transaction")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin Failure", func(t *testing.T) {
		// Arrange
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		store := repository.NewStore(db)
		beginErr := errors.New("too many connections")
		called := false

		mock.ExpectBegin().WillReturnError(beginErr)

		// Act
		err = store.WithTx(t.Context(), func(tx repository.Store) error {
			called = true
			return nil
		})

		// Assert
		assert.ErrorIs(t, err, beginErr)
		assert.False(t, called)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nested Call Joins Transaction", func(t *testing.T) {
		// Arrange
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		store := repository.NewStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(clearSQL).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		// Act
		err = store.WithTx(t.Context(), func(tx repository.Store) error {
			return tx.WithTx(t.Context(), func(inner repository.Store) error {
				_, innerErr := inner.Items().DeleteItemsByWishlist(t.Context(), 3)
				return innerErr
			})
		})

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
