package order

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no order matches the id/token pair. Callers
// cannot distinguish a wrong token from a missing order.
var ErrNotFound = errors.New("order not found")

// Store is the append-only order log.
type Store interface {
	Append(ctx context.Context, o Order) (Order, error)
	Retrieve(ctx context.Context, id, token string) (Order, error)
}

// MemoryStore keeps orders in process memory. It backs development and
// tests; production uses PostgresStore.
type MemoryStore struct {
	mu     sync.Mutex
	orders []Order
}

// Append assigns id, token and timestamp and records the order.
func (s *MemoryStore) Append(_ context.Context, o Order) (Order, error) {
	o.ID = uuid.NewString()
	o.Token = uuid.NewString()
	o.CreatedAt = time.Now().UTC()
	s.mu.Lock()
	s.orders = append(s.orders, o)
	s.mu.Unlock()
	return o, nil
}

// Retrieve scans for an order matching both id and token.
func (s *MemoryStore) Retrieve(_ context.Context, id, token string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id && o.Token == token {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}
