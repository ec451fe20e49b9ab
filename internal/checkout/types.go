// Package checkout orchestrates the two-step purchase flow: create a
// payment intent for the widget, then finalize the order once the charge
// outcome is known. Money is always recomputed server-side from the
// submitted items.
package checkout

// Customer is the checkout form payload.
type Customer struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	Email         string `json:"email" validate:"required,email"`
	StreetAddress string `json:"streetAddress" validate:"required,min=5,max=200"`
	UnitNumber    string `json:"unitNumber" validate:"omitempty,max=20"`
	PostalCode    string `json:"postalCode" validate:"required,min=4,max=10"`
}

// Item is a cart line as submitted by the client. Price and Discount are
// echoed from the catalogue snapshot and re-priced server-side.
type Item struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Variant  string  `json:"variant" validate:"omitempty"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
	Price    float64 `json:"price" validate:"min=0"`
	Discount float64 `json:"discount" validate:"min=0,max=100"`
}

// IntentInput is the payload for POST /api/v1/checkout.
type IntentInput struct {
	Customer Customer `json:"customer"`
	Items    []Item   `json:"items" validate:"required,min=1,dive"`
}

// IntentOutput carries the provider's opaque client secret back to the
// payment widget.
type IntentOutput struct {
	ClientSecret string  `json:"clientSecret"`
	AmountMinor  int64   `json:"amountInCents"`
	Currency     string  `json:"currency"`
	Total        float64 `json:"total"`
}

// FinalizeInput is the payload for POST /api/v1/orders.
type FinalizeInput struct {
	Customer      Customer `json:"customer"`
	Items         []Item   `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string   `json:"paymentMethod" validate:"required,oneof=credit_card bank_transfer paypal"`
	PaymentStatus string   `json:"paymentStatus" validate:"required"`
}

// FinalizeOutput points the customer at their stored order.
type FinalizeOutput struct {
	OrderID string `json:"orderId"`
	Token   string `json:"token"`
	Total   string `json:"total"`
}
