package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the admin view of a customer purchase: lifecycle status,
// payment and shipping metadata, and the ordered line items.
type Order struct {
	ID            string
	Status        Status
	Notes         string
	TotalPrice    decimal.Decimal
	CreatedAt     time.Time
	PaymentInfo   string
	PaymentStatus string
	Customer      Customer
	Address       Address
	Items         []Item
}

// Item is one product line within an order. Its status advances
// independently of the order's aggregate status.
type Item struct {
	Quantity int
	Total    decimal.Decimal
	Status   Status
	Product  ProductSnapshot
}

// ProductSnapshot captures the product as it was sold. Price is the
// unit price at purchase time, not the live catalog price.
type ProductSnapshot struct {
	Name      string
	Price     decimal.Decimal
	MainImage string
	SKU       string
}

// Customer is the embedded buyer snapshot on an order.
type Customer struct {
	FirstName string
	LastName  string
	Email     string
}

// FullName returns "First Last".
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Address is the shipping destination of an order.
type Address struct {
	Line1 string
	City  string
	State string
	Phone string
}

// Update is the partial write an admin may send back for an order.
type Update struct {
	Status Status
	Notes  string
}
