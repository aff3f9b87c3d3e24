package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/models"
)

type WishlistRepository interface {
	CreateWishlist(ctx context.Context, wishlist *models.Wishlist) error
	GetWishlistByID(ctx context.Context, id int64) (*models.Wishlist, error)
	ListWishlists(ctx context.Context, filter models.WishlistFilter) ([]*models.Wishlist, error)
	UpdateWishlist(ctx context.Context, wishlist *models.Wishlist) error
	DeleteWishlist(ctx context.Context, id int64) (bool, error)
}

type wishlistRepository struct {
	DB DBTX
}

func NewWishlistRepo(db DBTX) WishlistRepository {
	return &wishlistRepository{DB: db}
}

const wishlistColumns = `id, customer_id, name, description, created_at, updated_at`

func (r *wishlistRepository) CreateWishlist(ctx context.Context, wishlist *models.Wishlist) error {
	dbCtx, cancel := WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO wishlists (customer_id, name, description)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, wishlist.CustomerID, wishlist.Name, wishlist.Description).
		Scan(&wishlist.ID, &wishlist.CreatedAt, &wishlist.UpdatedAt)
	if err != nil {
		return wrapWriteError("inserting wishlist", err)
	}

	return nil
}

func (r *wishlistRepository) GetWishlistByID(ctx context.Context, id int64) (*models.Wishlist, error) {
	dbCtx, cancel := WithDBTimeout(ctx)
	defer cancel()

	wishlist := &models.Wishlist{}

	query := `SELECT ` + wishlistColumns + ` FROM wishlists WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&wishlist.ID, &wishlist.CustomerID, &wishlist.Name, &wishlist.Description, &wishlist.CreatedAt, &wishlist.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return wishlist, nil
}

// ListWishlists applies the filter with AND semantics. Name matching is a
// case-insensitive substring match with LIKE wildcards taken literally.
func (r *wishlistRepository) ListWishlists(ctx context.Context, filter models.WishlistFilter) ([]*models.Wishlist, error) {
	dbCtx, cancel := WithDBTimeout(ctx)
	defer cancel()

	var conditions []string
	var args []any

	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		conditions = append(conditions, fmt.Sprintf("customer_id = $%d", len(args)))
	}

	if filter.Name != "" {
		args = append(args, containsPattern(filter.Name))
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	query := `SELECT ` + wishlistColumns + ` FROM wishlists`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}
	defer rows.Close()

	wishlists := []*models.Wishlist{}

	for rows.Next() {
		wishlist := &models.Wishlist{}

		err := rows.Scan(&wishlist.ID, &wishlist.CustomerID, &wishlist.Name, &wishlist.Description, &wishlist.CreatedAt, &wishlist.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning wishlist: %w", err)
		}

		wishlists = append(wishlists, wishlist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating wishlists: %w", err)
	}

	return wishlists, nil
}

func (r *wishlistRepository) UpdateWishlist(ctx context.Context, wishlist *models.Wishlist) error {
	dbCtx, cancel := WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE wishlists SET name = $1, description = $2, updated_at = NOW()
			  WHERE id = $3
			  RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, wishlist.Name, wishlist.Description, wishlist.ID).Scan(&wishlist.UpdatedAt)
	if err != nil {
		return wrapWriteError("updating wishlist", err)
	}

	return nil
}

// DeleteWishlist reports whether a row was removed.
func (r *wishlistRepository) DeleteWishlist(ctx context.Context, id int64) (bool, error) {
	dbCtx, cancel := WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM wishlists WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("deleting wishlist: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}

	return affected > 0, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}
