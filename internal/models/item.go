package models

import "time"

type Item struct {
	ID          int64     `json:"id"`
	WishlistID  int64     `json:"wishlist_id"`
	CustomerID  string    `json:"customer_id" validate:"max=16"`
	ProductID   int64     `json:"product_id" validate:"gt=0"`
	ProductName string    `json:"product_name" validate:"required,notblank,max=255"`
	WishDate    time.Time `json:"wish_date"`
	Prices      Price     `json:"prices" validate:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateItemRequest keeps every field a pointer so that a missing key can be
// told apart from a zero value. The price may be sent as "price" or "prices".
type CreateItemRequest struct {
	ProductID   *int64  `json:"product_id,omitempty"`
	ProductName *string `json:"product_name,omitempty"`
	Price       *Price  `json:"price,omitempty"`
	Prices      *Price  `json:"prices,omitempty"`
}

func (r *CreateItemRequest) PriceValue() *Price {
	if r.Prices != nil {
		return r.Prices
	}

	return r.Price
}

type UpdateItemRequest struct {
	ProductID   Optional[int64]     `json:"product_id,omitzero"`
	ProductName Optional[string]    `json:"product_name,omitzero"`
	Price       Optional[Price]     `json:"price,omitzero"`
	Prices      Optional[Price]     `json:"prices,omitzero"`
	WishDate    Optional[time.Time] `json:"wish_date,omitzero"`
}

func (r *UpdateItemRequest) PriceValue() Optional[Price] {
	if r.Prices.Set {
		return r.Prices
	}

	return r.Price
}

type ItemFilter struct {
	ProductID   *int64
	ProductName string
}
