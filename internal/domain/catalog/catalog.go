// Package catalog holds the resource models served by the collaborator
// admin endpoints: products, categories, vendors and support tickets.
package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a live catalog item, including its promotion state.
type Product struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Category   int64           `json:"category"`
	MainImage  string          `json:"main_image"`
	SKU        string          `json:"sku,omitempty"`
	Promo      bool            `json:"promo"`
	PromoPrice decimal.Decimal `json:"promo_price"`
}

// Category groups products for filtering.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Vendor is a seller account managed from the vendors screen.
type Vendor struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Approved bool   `json:"approved"`
}

// Ticket is a customer support request.
type Ticket struct {
	ID        int64     `json:"id"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Email     string    `json:"email"`
	Resolved  bool      `json:"is_resolved"`
	CreatedAt time.Time `json:"created_at"`
}

// PromoUpdate is the partial write toggling a product's promotion.
// When Promo is false the price is cleared server-side.
type PromoUpdate struct {
	Promo      bool            `json:"promo"`
	PromoPrice decimal.Decimal `json:"promo_price"`
}
