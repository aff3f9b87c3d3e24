package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/models"
	repository "github.com/CSCI-GA-2820-FA25-003/wishlists/internal/repositories"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wishlistRowColumns = []string{"id", "customer_id", "name", "description", "created_at", "updated_at"}

func TestNewWishlistRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewWishlistRepo(db)
	assert.NotNil(t, repo, "NewWishlistRepo should return a non-nil repository")
}

func TestWishlistRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewWishlistRepo(db)
	ctx := t.Context()

	insertSQL := regexp.QuoteMeta(`INSERT INTO wishlists (customer_id, name, description) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`)

	t.Run("CreateWishlist", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			description := "gift ideas"
			wishlist := &models.Wishlist{CustomerID: "cust-1", Name: "Birthday", Description: &description}
			now := time.Now()

			mock.ExpectQuery(insertSQL).
				WithArgs("cust-1", "Birthday", &description).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))

			// Act
			err := repo.CreateWishlist(ctx, wishlist)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, int64(11), wishlist.ID)
			assert.WithinDuration(t, now, wishlist.CreatedAt, time.Second)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Unique Violation", func(t *testing.T) {
			// Arrange
			wishlist := &models.Wishlist{CustomerID: "cust-1", Name: "Birthday"}
			pqErr := &pq.Error{Code: "23505", Constraint: "uq_wishlist_customer_name"}

			mock.ExpectQuery(insertSQL).
				WithArgs("cust-1", "Birthday", nil).
				WillReturnError(pqErr)

			// Act
			err := repo.CreateWishlist(ctx, wishlist)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, repository.ErrDuplicateEntry)
			assert.ErrorIs(t, err, pqErr)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			wishlist := &models.Wishlist{CustomerID: "cust-1", Name: "Birthday"}
			dbError := errors.New("database insertion error")

			mock.ExpectQuery(insertSQL).WithArgs("cust-1", "Birthday", nil).WillReturnError(dbError)

			// Act
			err := repo.CreateWishlist(ctx, wishlist)

			// Assert
			assert.ErrorIs(t, err, dbError)
			assert.NotErrorIs(t, err, repository.ErrDuplicateEntry)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetWishlistByID", func(t *testing.T) {
		selectSQL := regexp.QuoteMeta(`SELECT id, customer_id, name, description, created_at, updated_at FROM wishlists WHERE id = $1`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			now := time.Now()
			mock.ExpectQuery(selectSQL).WithArgs(int64(4)).
				WillReturnRows(sqlmock.NewRows(wishlistRowColumns).AddRow(int64(4), "cust-1", "Birthday", nil, now, now))

			// Act
			wishlist, err := repo.GetWishlistByID(ctx, 4)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, int64(4), wishlist.ID)
			assert.Nil(t, wishlist.Description)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(selectSQL).WithArgs(int64(5)).WillReturnError(sql.ErrNoRows)

			// Act
			wishlist, err := repo.GetWishlistByID(ctx, 5)

			// Assert
			assert.Nil(t, wishlist)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ListWishlists", func(t *testing.T) {
		baseSQL := `SELECT id, customer_id, name, description, created_at, updated_at FROM wishlists`

		t.Run("No Filter", func(t *testing.T) {
			// Arrange
			now := time.Now()
			mock.ExpectQuery(regexp.QuoteMeta(baseSQL + ` ORDER BY id`)).
				WillReturnRows(sqlmock.NewRows(wishlistRowColumns).
					AddRow(int64(1), "cust-1", "A", nil, now, now).
					AddRow(int64(2), "cust-2", "B", "desc", now, now))

			// Act
			wishlists, err := repo.ListWishlists(ctx, models.WishlistFilter{})

			// Assert
			require.NoError(t, err)
			require.Len(t, wishlists, 2)
			require.NotNil(t, wishlists[1].Description)
			assert.Equal(t, "desc", *wishlists[1].Description)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Customer And Escaped Name", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(regexp.QuoteMeta(baseSQL+` WHERE customer_id = $1 AND name ILIKE $2 ORDER BY id`)).
				WithArgs("cust-1", `%50\% off\_%`).
				WillReturnRows(sqlmock.NewRows(wishlistRowColumns))

			// Act
			wishlists, err := repo.ListWishlists(ctx, models.WishlistFilter{CustomerID: "cust-1", Name: "50% off_"})

			// Assert
			require.NoError(t, err)
			assert.NotNil(t, wishlists)
			assert.Empty(t, wishlists)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Query Error", func(t *testing.T) {
			// Arrange
			dbError := errors.New("connection reset")
			mock.ExpectQuery(regexp.QuoteMeta(baseSQL + ` WHERE customer_id = $1 ORDER BY id`)).
				WithArgs("cust-1").
				WillReturnError(dbError)

			// Act
			wishlists, err := repo.ListWishlists(ctx, models.WishlistFilter{CustomerID: "cust-1"})

			// Assert
			assert.Nil(t, wishlists)
			assert.ErrorIs(t, err, dbError)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateWishlist", func(t *testing.T) {
		updateSQL := regexp.QuoteMeta(`UPDATE wishlists SET name = $1, description = $2, updated_at = NOW() WHERE id = $3 RETURNING updated_at`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			wishlist := &models.Wishlist{ID: 4, CustomerID: "cust-1", Name: "Holidays"}
			later := time.Now().Add(time.Minute)

			mock.ExpectQuery(updateSQL).WithArgs("Holidays", nil, int64(4)).
				WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(later))

			// Act
			err := repo.UpdateWishlist(ctx, wishlist)

			// Assert
			require.NoError(t, err)
			assert.WithinDuration(t, later, wishlist.UpdatedAt, time.Second)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Unique Violation", func(t *testing.T) {
			// Arrange
			wishlist := &models.Wishlist{ID: 4, CustomerID: "cust-1", Name: "Taken"}

			mock.ExpectQuery(updateSQL).WithArgs("Taken", nil, int64(4)).
				WillReturnError(&pq.Error{Code: "23505"})

			// Act
			err := repo.UpdateWishlist(ctx, wishlist)

			// Assert
			assert.ErrorIs(t, err, repository.ErrDuplicateEntry)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("DeleteWishlist", func(t *testing.T) {
		deleteSQL := regexp.QuoteMeta(`DELETE FROM wishlists WHERE id = $1`)

		t.Run("Deleted", func(t *testing.T) {
			mock.ExpectExec(deleteSQL).WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))

			deleted, err := repo.DeleteWishlist(ctx, 4)

			require.NoError(t, err)
			assert.True(t, deleted)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Missing Row", func(t *testing.T) {
			mock.ExpectExec(deleteSQL).WithArgs(int64(99)).WillReturnResult(sqlmock.NewResult(0, 0))

			deleted, err := repo.DeleteWishlist(ctx, 99)

			require.NoError(t, err)
			assert.False(t, deleted)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
