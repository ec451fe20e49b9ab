package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/pricing"
)

func line(price float64, discountPct float64, qty int) pricing.Line {
	return pricing.Line{
		UnitPrice:   decimal.NewFromFloat(price),
		DiscountPct: decimal.NewFromFloat(discountPct),
		Quantity:    qty,
	}
}

func TestComputeDiscountedTotals(t *testing.T) {
	summary := pricing.Compute([]pricing.Line{line(798, 10, 2)})

	require.True(t, summary.Subtotal.Equal(decimal.RequireFromString("1596")), "subtotal %s", summary.Subtotal)
	require.True(t, summary.Discount.Equal(decimal.RequireFromString("159.6")), "discount %s", summary.Discount)
	require.True(t, summary.Total.Equal(decimal.RequireFromString("1436.4")), "total %s", summary.Total)
	require.Equal(t, int64(143640), pricing.MinorUnits(summary.Total))
}

func TestComputeMixedLines(t *testing.T) {
	summary := pricing.Compute([]pricing.Line{
		line(49.9, 0, 3),
		line(120, 25, 1),
		line(15.5, 50, 2),
	})

	require.True(t, summary.Subtotal.Equal(decimal.RequireFromString("300.7")), "subtotal %s", summary.Subtotal)
	require.True(t, summary.Discount.Equal(decimal.RequireFromString("45.5")), "discount %s", summary.Discount)
	require.True(t, summary.Total.Equal(summary.Subtotal.Sub(summary.Discount)))
}

func TestComputeSkipsNonPositiveQuantities(t *testing.T) {
	summary := pricing.Compute([]pricing.Line{
		line(100, 10, 0),
		line(100, 10, -2),
	})

	require.True(t, summary.Subtotal.IsZero())
	require.True(t, summary.Discount.IsZero())
	require.True(t, summary.Total.IsZero())
}

func TestComputeEmpty(t *testing.T) {
	summary := pricing.Compute(nil)
	require.True(t, summary.Total.IsZero())
	require.Equal(t, int64(0), pricing.MinorUnits(summary.Total))
}

func TestDiscountedUnitPrice(t *testing.T) {
	got := pricing.DiscountedUnitPrice(decimal.NewFromInt(798), decimal.NewFromInt(10))
	require.True(t, got.Equal(decimal.RequireFromString("718.2")), "got %s", got)

	full := pricing.DiscountedUnitPrice(decimal.NewFromInt(798), decimal.Zero)
	require.True(t, full.Equal(decimal.NewFromInt(798)))
}

func TestMinorUnitsRounding(t *testing.T) {
	cases := []struct {
		amount string
		want   int64
	}{
		{"0", 0},
		{"1436.40", 143640},
		{"0.005", 1},
		{"10.994", 1099},
		{"10.995", 1100},
	}
	for _, tc := range cases {
		got := pricing.MinorUnits(decimal.RequireFromString(tc.amount))
		require.Equal(t, tc.want, got, "amount %s", tc.amount)
	}
}
