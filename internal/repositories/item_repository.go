package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/models"
	"github.com/lib/pq"
)

type ItemRepository interface {
	CreateItem(ctx context.Context, item *models.Item) error
	GetItemByID(ctx context.Context, id int64) (*models.Item, error)
	ListItems(ctx context.Context, wishlistID int64, filter models.ItemFilter) ([]models.Item, error)
	ListItemsByWishlistIDs(ctx context.Context, wishlistIDs []int64) (map[int64][]models.Item, error)
	ExistsByProduct(ctx context.Context, wishlistID, productID, excludeItemID int64) (bool, error)
	UpdateItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, id int64) (bool, error)
	DeleteItemsByWishlist(ctx context.Context, wishlistID int64) (int64, error)
}

type itemRepository struct {
	DB DBTX
}

func NewItemRepo(db DBTX) ItemRepository {
	return &itemRepository{DB: db}
}

const itemColumns = `id, wishlist_id, customer_id, product_id, product_name, wish_date, prices, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner, item *models.Item) error {
	return row.Scan(&item.ID, &item.WishlistID, &item.CustomerID, &item.ProductID, &item.ProductName,
		&item.WishDate, &item.Prices, &item.CreatedAt, &item.UpdatedAt)
}

func (r *itemRepository) CreateItem(ctx context.Context, item *models.Item) error {
	dbCtx, cancel := WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO items (wishlist_id, customer_id, product_id, product_name, prices)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, wish_date, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, item.WishlistID, item.CustomerID, item.ProductID, item.ProductName, item.Prices).
		Scan(&item.ID, &item.WishDate, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return wrapWriteError("inserting item", err)
	}

	return nil
}

func (r *itemRepository) GetItemByID(ctx context.Context, id int64) (*models.Item, error) {
	dbCtx, cancel := WithDBTimeout(ctx)
	defer cancel()

	item := &models.Item{}

	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	if err := scanItem(r.DB.QueryRowContext(dbCtx, query, id), item); err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return item, nil
}

func (r *itemRepository) ListItems(ctx context.Context, wishlistID int64, filter models.ItemFilter) ([]models.Item, error) {
	dbCtx, cancel := WithDBTimeout(ctx)
	defer cancel()

	args := []any{wishlistID}
	conditions := []string{"wishlist_id = $1"}

	if filter.ProductID != nil {
		args = append(args, *filter.ProductID)
		conditions = append(conditions, fmt.Sprintf("product_id = $%d", len(args)))
	}

	if filter.ProductName != "" {
		args = append(args, containsPattern(filter.ProductName))
		conditions = append(conditions, fmt.Sprintf("product_name ILIKE $%d", len(args)))
	}

	query := `SELECT ` + itemColumns + ` FROM items WHERE ` + strings.Join(conditions, " AND ") + ` ORDER BY id`

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return collectItems(rows)
}

// ListItemsByWishlistIDs loads the items of several wishlists in one query,
// grouped by wishlist id.
func (r *itemRepository) ListItemsByWishlistIDs(ctx context.Context, wishlistIDs []int64) (map[int64][]models.Item, error) {
	grouped := make(map[int64][]models.Item, len(wishlistIDs))

	if len(wishlistIDs) == 0 {
		return grouped, nil
	}

	dbCtx, cancel := WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + itemColumns + ` FROM items WHERE wishlist_id = ANY($1) ORDER BY wishlist_id, id`

	rows, err := r.DB.QueryContext(dbCtx, query, pq.Array(wishlistIDs))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	items, err := collectItems(rows)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		grouped[item.WishlistID] = append(grouped[item.WishlistID], item)
	}

	return grouped, nil
}

func collectItems(rows *sql.Rows) ([]models.Item, error) {
	defer rows.Close()

	items := []models.Item{}

	for rows.Next() {
		var item models.Item

		if err := scanItem(rows, &item); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return items, nil
}

// ExistsByProduct reports whether another item of the wishlist already holds
// the product. Pass excludeItemID = 0 when creating.
func (r *itemRepository) ExistsByProduct(ctx context.Context, wishlistID, productID, excludeItemID int64) (bool, error) {
	dbCtx, cancel := WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT EXISTS (SELECT 1 FROM items WHERE wishlist_id = $1 AND product_id = $2 AND id <> $3)`

	var exists bool
	if err := r.DB.QueryRowContext(dbCtx, query, wishlistID, productID, excludeItemID).Scan(&exists); err != nil {
		return false, fmt.Errorf("querying database: %w", err)
	}

	return exists, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *models.Item) error {
	dbCtx, cancel := WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE items SET product_id = $1, product_name = $2, prices = $3, wish_date = $4, updated_at = NOW()
			  WHERE id = $5
			  RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, item.ProductID, item.ProductName, item.Prices, item.WishDate, item.ID).
		Scan(&item.UpdatedAt)
	if err != nil {
		return wrapWriteError("updating item", err)
	}

	return nil
}

func (r *itemRepository) DeleteItem(ctx context.Context, id int64) (bool, error) {
	dbCtx, cancel := WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("deleting item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *itemRepository) DeleteItemsByWishlist(ctx context.Context, wishlistID int64) (int64, error) {
	dbCtx, cancel := WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM items WHERE wishlist_id = $1`, wishlistID)
	if err != nil {
		return 0, fmt.Errorf("deleting wishlist items: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}

	return affected, nil
}
