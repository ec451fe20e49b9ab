// Package pricing implements exact money arithmetic for cart and checkout
// totals. All intermediate math uses decimal values; callers convert to
// float64 or minor units only at the API boundary.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Line is a priced cart entry. DiscountPct is a percentage in [0, 100].
type Line struct {
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal
	Quantity    int
}

// Summary holds the three computed totals. Total is always exactly
// Subtotal minus Discount.
type Summary struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// DiscountedUnitPrice applies a percentage discount to a unit price.
func DiscountedUnitPrice(price, discountPct decimal.Decimal) decimal.Decimal {
	return price.Sub(price.Mul(discountPct.Div(hundred)))
}

// Compute folds the lines into subtotal, discount and total. Lines with a
// non-positive quantity contribute nothing.
func Compute(lines []Line) Summary {
	subtotal := decimal.Zero
	discount := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		qty := decimal.NewFromInt(int64(line.Quantity))
		subtotal = subtotal.Add(line.UnitPrice.Mul(qty))
		discount = discount.Add(line.UnitPrice.Mul(line.DiscountPct.Div(hundred)).Mul(qty))
	}
	return Summary{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}
}

// MinorUnits converts a major-unit amount to the smallest currency unit,
// rounding half away from zero.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}
