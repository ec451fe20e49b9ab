package payment

import (
	"context"
	"fmt"
	"net/http"
	"time"

	stripe "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
)

const providerStripe = "stripe"

// Stripe creates payment intents against the Stripe API. Calls carry a
// fixed timeout and zero network retries; the circuit breaker in checkout
// decides when to stop calling.
type Stripe struct {
	api *client.API
}

// NewStripe builds a Stripe provider with its own HTTP client. baseURL
// overrides the API host for tests; leave it empty in production.
func NewStripe(secretKey string, timeout time.Duration, baseURL string) *Stripe {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	cfg := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: timeout},
		MaxNetworkRetries: stripe.Int64(0),
	}
	if baseURL != "" {
		cfg.URL = stripe.String(baseURL)
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, cfg)
	api := &client.API{}
	api.Init(secretKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
	return &Stripe{api: api}
}

// CreateIntent authorises a card charge and returns the intent handle.
func (s *Stripe) CreateIntent(ctx context.Context, req IntentRequest) (Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.AmountMinor),
		Currency:           stripe.String(req.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.AddMetadata("customer_name", req.CustomerName)
	params.AddMetadata("customer_email", req.CustomerEmail)

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return Intent{}, fmt.Errorf("stripe: create payment intent: %w", err)
	}
	return Intent{
		Provider:     providerStripe,
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}, nil
}

// IntentStatus fetches the current status of an intent.
func (s *Stripe) IntentStatus(ctx context.Context, id string) (string, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := s.api.PaymentIntents.Get(id, params)
	if err != nil {
		return "", fmt.Errorf("stripe: get payment intent: %w", err)
	}
	return string(pi.Status), nil
}
