package checkout

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"storefront-api/internal/common"
	"storefront-api/internal/obs"
	"storefront-api/internal/order"
	"storefront-api/internal/payment"
	"storefront-api/internal/pricing"
	"storefront-api/internal/resilience"
)

// Service drives the checkout flow against the payment provider and the
// order store.
type Service struct {
	Provider     payment.Provider
	ProviderName string
	Orders       order.Store
	StoreName    string
	Breaker      *resilience.Breaker
	Currency     string
	Logger       zerolog.Logger
}

// CreateIntent validates the payload, prices the items and asks the
// provider for a payment intent. The provider is never called for an
// invalid payload.
func (s *Service) CreateIntent(ctx context.Context, in IntentInput) (IntentOutput, error) {
	if errs := Validate(in); len(errs) > 0 {
		return IntentOutput{}, validationError(errs)
	}

	summary := totals(in.Items)
	amount := pricing.MinorUnits(summary.Total)

	if s.Breaker != nil && !s.Breaker.Allow(ctx) {
		countIntent(s.ProviderName, "rejected")
		return IntentOutput{}, &common.AppError{
			Code:       common.CodeUpstream,
			Message:    "payment provider unavailable",
			HTTPStatus: http.StatusServiceUnavailable,
		}
	}
	intent, err := s.Provider.CreateIntent(ctx, payment.IntentRequest{
		AmountMinor:   amount,
		Currency:      s.Currency,
		CustomerName:  in.Customer.Name,
		CustomerEmail: in.Customer.Email,
	})
	if s.Breaker != nil {
		s.Breaker.Report(ctx, err == nil)
	}
	if err != nil {
		countIntent(s.ProviderName, "error")
		s.Logger.Error().Err(err).Int64("amount_minor", amount).Msg("create payment intent failed")
		return IntentOutput{}, &common.AppError{
			Code:       common.CodeUpstream,
			Message:    "payment provider error",
			HTTPStatus: http.StatusBadGateway,
			Err:        err,
		}
	}
	countIntent(s.ProviderName, "ok")
	return IntentOutput{
		ClientSecret: intent.ClientSecret,
		AmountMinor:  amount,
		Currency:     s.Currency,
		Total:        summary.Total.InexactFloat64(),
	}, nil
}

// Finalize validates the payload, recomputes the totals and appends the
// order. A store failure after a successful charge is logged and surfaced;
// the charge is not reversed here.
func (s *Service) Finalize(ctx context.Context, in FinalizeInput) (FinalizeOutput, error) {
	if errs := Validate(in); len(errs) > 0 {
		return FinalizeOutput{}, validationError(errs)
	}

	summary := totals(in.Items)
	items := make([]order.Item, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, order.Item{
			ID:       item.ID,
			Name:     item.Name,
			Variant:  item.Variant,
			Quantity: item.Quantity,
			Price:    item.Price,
			Discount: item.Discount,
		})
	}

	stored, err := s.Orders.Append(ctx, order.Order{
		Customer: order.Customer{
			Name:          in.Customer.Name,
			Email:         in.Customer.Email,
			StreetAddress: in.Customer.StreetAddress,
			UnitNumber:    in.Customer.UnitNumber,
			PostalCode:    in.Customer.PostalCode,
		},
		Items:         items,
		Subtotal:      summary.Subtotal,
		Discount:      summary.Discount,
		Total:         summary.Total,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: in.PaymentStatus,
	})
	if err != nil {
		countAppend(s.StoreName, "error")
		s.Logger.Error().Err(err).Str("payment_status", in.PaymentStatus).Msg("order append failed after charge")
		return FinalizeOutput{}, &common.AppError{
			Code:       common.CodeUpstream,
			Message:    "failed to save order",
			HTTPStatus: http.StatusBadGateway,
			Err:        err,
		}
	}
	countAppend(s.StoreName, "ok")
	return FinalizeOutput{
		OrderID: stored.ID,
		Token:   stored.Token,
		Total:   stored.Total.StringFixed(2),
	}, nil
}

// totals prices the submitted items. The client's own totals are never
// trusted.
func totals(items []Item) pricing.Summary {
	lines := make([]pricing.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, pricing.Line{
			UnitPrice:   decimal.NewFromFloat(item.Price),
			DiscountPct: decimal.NewFromFloat(item.Discount),
			Quantity:    item.Quantity,
		})
	}
	return pricing.Compute(lines)
}

func validationError(errs []FieldError) *common.AppError {
	return &common.AppError{
		Code:       common.CodeValidation,
		Message:    "invalid checkout payload",
		HTTPStatus: http.StatusBadRequest,
		Details:    errs,
	}
}

func countIntent(provider, result string) {
	if obs.PaymentIntentTotal != nil {
		obs.PaymentIntentTotal.WithLabelValues(provider, result).Inc()
	}
}

func countAppend(store, result string) {
	if obs.OrdersAppendedTotal != nil {
		obs.OrdersAppendedTotal.WithLabelValues(store, result).Inc()
	}
}
