package order_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/order"
)

func sampleOrder() order.Order {
	return order.Order{
		Customer: order.Customer{
			Name:          "Ada Lovelace",
			Email:         "ada@example.com",
			StreetAddress: "12 Analytical Way",
			PostalCode:    "018956",
		},
		Items: []order.Item{
			{ID: "1-black", Name: "Mechanical Keyboard", Variant: "black", Quantity: 2, Price: 798, Discount: 10},
		},
		Subtotal:      decimal.RequireFromString("1596"),
		Discount:      decimal.RequireFromString("159.6"),
		Total:         decimal.RequireFromString("1436.4"),
		PaymentMethod: "credit_card",
		PaymentStatus: "succeeded",
	}
}

func TestMemoryStoreAppendAssignsIdentity(t *testing.T) {
	store := &order.MemoryStore{}
	stored, err := store.Append(context.Background(), sampleOrder())
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID)
	require.NotEmpty(t, stored.Token)
	require.NotEqual(t, stored.ID, stored.Token)
	require.False(t, stored.CreatedAt.IsZero())
}

func TestMemoryStoreRetrieveRequiresBoth(t *testing.T) {
	store := &order.MemoryStore{}
	ctx := context.Background()
	stored, err := store.Append(ctx, sampleOrder())
	require.NoError(t, err)

	got, err := store.Retrieve(ctx, stored.ID, stored.Token)
	require.NoError(t, err)
	require.Equal(t, stored.ID, got.ID)
	require.Equal(t, "credit_card", got.PaymentMethod)
	require.True(t, got.Total.Equal(decimal.RequireFromString("1436.4")))

	_, err = store.Retrieve(ctx, stored.ID, "wrong-token")
	require.ErrorIs(t, err, order.ErrNotFound)

	_, err = store.Retrieve(ctx, "wrong-id", stored.Token)
	require.ErrorIs(t, err, order.ErrNotFound)
}

func TestMemoryStoreOrdersAreIndependent(t *testing.T) {
	store := &order.MemoryStore{}
	ctx := context.Background()

	first, err := store.Append(ctx, sampleOrder())
	require.NoError(t, err)
	second, err := store.Append(ctx, sampleOrder())
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	// A token from one order cannot unlock another.
	_, err = store.Retrieve(ctx, first.ID, second.Token)
	require.ErrorIs(t, err, order.ErrNotFound)
}
