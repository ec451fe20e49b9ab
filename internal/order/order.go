// Package order persists finalized orders. The store is append-only: an
// order is written once and can only be read back with its id plus the
// capability token handed out at creation.
package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the delivery contact captured at checkout.
type Customer struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	StreetAddress string `json:"streetAddress"`
	UnitNumber    string `json:"unitNumber,omitempty"`
	PostalCode    string `json:"postalCode"`
}

// Item is one purchased line, denormalised from the cart at finalize time.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Variant  string  `json:"variant,omitempty"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Discount float64 `json:"discount,omitempty"`
}

// Order is a finalized purchase. ID and Token are assigned by the store on
// append and never change afterwards.
type Order struct {
	ID            string
	Token         string
	Customer      Customer
	Items         []Item
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	PaymentStatus string
	CreatedAt     time.Time
}
