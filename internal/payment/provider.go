// Package payment abstracts the payment processor behind a small Provider
// interface so checkout can run against the real gateway or a mock.
package payment

import "context"

// IntentRequest describes a charge to authorise. Amount is in minor
// currency units.
type IntentRequest struct {
	AmountMinor   int64
	Currency      string
	CustomerName  string
	CustomerEmail string
}

// Intent is the provider's handle for an authorised-but-unconfirmed charge.
// ClientSecret is opaque to this service and is passed through to the
// frontend widget.
type Intent struct {
	Provider     string `json:"provider"`
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Status       string `json:"status"`
}

// Provider creates and inspects payment intents.
type Provider interface {
	CreateIntent(ctx context.Context, req IntentRequest) (Intent, error)
	IntentStatus(ctx context.Context, id string) (string, error)
}
