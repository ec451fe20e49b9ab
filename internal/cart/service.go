package cart

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront-api/internal/catalog"
	"storefront-api/internal/common"
	"storefront-api/internal/obs"
	"storefront-api/internal/pricing"
)

// Service coordinates cart mutations: it resolves products through the
// catalogue, applies the state machine and writes the snapshot back after
// every mutation. Sidebar flags are process-local only.
type Service struct {
	Catalog   *catalog.Service
	Snapshots SnapshotStore

	mu   sync.Mutex
	open map[string]bool
}

// Totals summarises the priced cart for API responses.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"totalDiscount"`
	Total    float64 `json:"total"`
}

// Create registers a new empty cart and returns its id.
func (s *Service) Create(ctx context.Context) (string, error) {
	id := uuid.NewString()
	if err := s.Snapshots.Save(ctx, id, nil); err != nil {
		return "", s.storeError(err)
	}
	countMutation("create")
	return id, nil
}

// Get restores the cart state. An id without a snapshot yields an empty
// cart rather than an error; expired carts simply start over.
func (s *Service) Get(ctx context.Context, id string) (State, error) {
	lines, _, err := s.Snapshots.Load(ctx, id)
	if err != nil {
		return State{}, s.storeError(err)
	}
	return State{ID: id, Lines: lines, IsOpen: s.isOpen(id)}, nil
}

// AddLine resolves the product by slug and adds it to the cart.
func (s *Service) AddLine(ctx context.Context, id, slug, variant string) (State, error) {
	product, err := s.Catalog.GetBySlug(ctx, slug)
	if err != nil {
		return State{}, err
	}
	return s.mutate(ctx, id, "add", func(state *State) {
		state.AddLine(&product, variant)
	})
}

// IncreaseQuantity bumps the identified line.
func (s *Service) IncreaseQuantity(ctx context.Context, id, lineID string) (State, error) {
	return s.mutate(ctx, id, "increase", func(state *State) {
		state.IncreaseQuantity(lineID)
	})
}

// DecreaseQuantity lowers the identified line, removing it at quantity one.
func (s *Service) DecreaseQuantity(ctx context.Context, id, lineID string) (State, error) {
	return s.mutate(ctx, id, "decrease", func(state *State) {
		state.DecreaseQuantity(lineID)
	})
}

// RemoveLine drops the identified line.
func (s *Service) RemoveLine(ctx context.Context, id, lineID string) (State, error) {
	return s.mutate(ctx, id, "remove", func(state *State) {
		state.RemoveLine(lineID)
	})
}

// Reset empties the cart, leaving the sidebar flag alone.
func (s *Service) Reset(ctx context.Context, id string) (State, error) {
	return s.mutate(ctx, id, "reset", func(state *State) {
		state.ResetLines()
	})
}

// Toggle flips the sidebar flag. No snapshot write happens: the flag is
// excluded from persistence.
func (s *Service) Toggle(ctx context.Context, id string) (State, error) {
	lines, _, err := s.Snapshots.Load(ctx, id)
	if err != nil {
		return State{}, s.storeError(err)
	}
	s.mu.Lock()
	if s.open == nil {
		s.open = make(map[string]bool)
	}
	s.open[id] = !s.open[id]
	isOpen := s.open[id]
	s.mu.Unlock()
	countMutation("toggle")
	return State{ID: id, Lines: lines, IsOpen: isOpen}, nil
}

// ComputeTotals prices the cart lines. A line whose product snapshot is
// missing contributes zero.
func ComputeTotals(lines []Line) Totals {
	priced := make([]pricing.Line, 0, len(lines))
	for _, line := range lines {
		if line.Product == nil {
			continue
		}
		priced = append(priced, pricing.Line{
			UnitPrice:   decimal.NewFromFloat(line.Product.Price),
			DiscountPct: decimal.NewFromFloat(line.Product.Discount),
			Quantity:    line.Quantity,
		})
	}
	summary := pricing.Compute(priced)
	return Totals{
		Subtotal: summary.Subtotal.InexactFloat64(),
		Discount: summary.Discount.InexactFloat64(),
		Total:    summary.Total.InexactFloat64(),
	}
}

func (s *Service) mutate(ctx context.Context, id, op string, apply func(*State)) (State, error) {
	lines, _, err := s.Snapshots.Load(ctx, id)
	if err != nil {
		return State{}, s.storeError(err)
	}
	state := State{ID: id, Lines: lines, IsOpen: s.isOpen(id)}
	apply(&state)
	if err := s.Snapshots.Save(ctx, id, state.Lines); err != nil {
		return State{}, s.storeError(err)
	}
	countMutation(op)
	return state, nil
}

func (s *Service) isOpen(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open[id]
}

func (s *Service) storeError(err error) error {
	return &common.AppError{
		Code:       common.CodeInternal,
		Message:    "cart store unavailable",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func countMutation(op string) {
	if obs.CartMutationsTotal != nil {
		obs.CartMutationsTotal.WithLabelValues(op).Inc()
	}
}
