package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const insertOrderSQL = `
INSERT INTO orders (id, token, customer, items, subtotal, discount, total, payment_method, payment_status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const selectOrderSQL = `
SELECT id, token, customer, items, subtotal, discount, total, payment_method, payment_status, created_at
FROM orders
WHERE id = $1 AND token = $2`

// PostgresStore writes orders to the orders table. Totals are stored as
// fixed two-decimal strings so the row reads back exactly as written.
type PostgresStore struct {
	Pool   *pgxpool.Pool
	Logger zerolog.Logger
}

// Append assigns id, token and timestamp and inserts the row.
func (s *PostgresStore) Append(ctx context.Context, o Order) (Order, error) {
	o.ID = uuid.NewString()
	o.Token = uuid.NewString()
	o.CreatedAt = time.Now().UTC()

	customer, err := json.Marshal(o.Customer)
	if err != nil {
		return Order{}, fmt.Errorf("order: encode customer: %w", err)
	}
	items, err := json.Marshal(o.Items)
	if err != nil {
		return Order{}, fmt.Errorf("order: encode items: %w", err)
	}

	_, err = s.Pool.Exec(ctx, insertOrderSQL,
		o.ID, o.Token, customer, items,
		o.Subtotal.StringFixed(2), o.Discount.StringFixed(2), o.Total.StringFixed(2),
		o.PaymentMethod, o.PaymentStatus, o.CreatedAt,
	)
	if err != nil {
		s.Logger.Error().Err(err).Str("order_id", o.ID).Msg("append order failed")
		return Order{}, fmt.Errorf("order: append: %w", err)
	}
	return o, nil
}

// Retrieve fetches the order matching both id and token. A malformed id
// cannot match any row and reads as not found.
func (s *PostgresStore) Retrieve(ctx context.Context, id, token string) (Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Order{}, ErrNotFound
	}
	if _, err := uuid.Parse(token); err != nil {
		return Order{}, ErrNotFound
	}

	var (
		o                         Order
		customer, items           []byte
		subtotal, discount, total string
	)
	row := s.Pool.QueryRow(ctx, selectOrderSQL, id, token)
	err := row.Scan(&o.ID, &o.Token, &customer, &items, &subtotal, &discount, &total, &o.PaymentMethod, &o.PaymentStatus, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		s.Logger.Error().Err(err).Str("order_id", id).Msg("retrieve order failed")
		return Order{}, fmt.Errorf("order: retrieve: %w", err)
	}

	if err := json.Unmarshal(customer, &o.Customer); err != nil {
		return Order{}, fmt.Errorf("order: decode customer: %w", err)
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return Order{}, fmt.Errorf("order: decode items: %w", err)
	}
	if o.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
		return Order{}, fmt.Errorf("order: decode subtotal: %w", err)
	}
	if o.Discount, err = decimal.NewFromString(discount); err != nil {
		return Order{}, fmt.Errorf("order: decode discount: %w", err)
	}
	if o.Total, err = decimal.NewFromString(total); err != nil {
		return Order{}, fmt.Errorf("order: decode total: %w", err)
	}
	return o, nil
}
