package models

import "time"

type Wishlist struct {
	ID          int64     `json:"id"`
	CustomerID  string    `json:"customer_id" validate:"required,max=16"`
	Name        string    `json:"name" validate:"required,notblank,max=255"`
	Description *string   `json:"description" validate:"omitempty,max=500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Items       []Item    `json:"items" validate:"-"`
}

type CreateWishlistRequest struct {
	CustomerID  string  `json:"customer_id" validate:"required,notblank,max=16"`
	Name        string  `json:"name" validate:"required,notblank,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// UpdateWishlistRequest is a sparse patch. Keys that are absent leave the
// stored value untouched.
type UpdateWishlistRequest struct {
	Name        Optional[string] `json:"name,omitzero"`
	Description Optional[string] `json:"description,omitzero"`
}

type WishlistFilter struct {
	CustomerID string
	Name       string
}

type ShareLink struct {
	ShareURL string `json:"share_url"`
}
