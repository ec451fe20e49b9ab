package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"storefront-api/internal/catalog"
)

var (
	keyboard = &catalog.Product{ID: 1, Name: "Mechanical Keyboard", Price: 798, Discount: 10, Slug: "mechanical-keyboard"}
	mouse    = &catalog.Product{ID: 2, Name: "Wireless Mouse", Price: 129.9, Slug: "wireless-mouse"}
)

func TestLineID(t *testing.T) {
	require.Equal(t, "1", LineID(1, ""))
	require.Equal(t, "1-black", LineID(1, "black"))
}

func TestAddLineDeduplicatesByIdentity(t *testing.T) {
	var s State
	s.AddLine(keyboard, "black")
	s.AddLine(keyboard, "black")
	s.AddLine(keyboard, "white")
	s.AddLine(mouse, "")

	require.Len(t, s.Lines, 3)
	require.Equal(t, "1-black", s.Lines[0].ID)
	require.Equal(t, 2, s.Lines[0].Quantity)
	require.Equal(t, "1-white", s.Lines[1].ID)
	require.Equal(t, 1, s.Lines[1].Quantity)
	require.Equal(t, "2", s.Lines[2].ID)
}

func TestAddLineNilProductIsNoop(t *testing.T) {
	var s State
	s.AddLine(nil, "black")
	require.Empty(t, s.Lines)
}

func TestIncreaseAndDecrease(t *testing.T) {
	var s State
	s.AddLine(keyboard, "")

	s.IncreaseQuantity("1")
	s.IncreaseQuantity("1")
	require.Equal(t, 3, s.Lines[0].Quantity)

	s.DecreaseQuantity("1")
	require.Equal(t, 2, s.Lines[0].Quantity)
}

func TestDecreaseAtOneRemovesLine(t *testing.T) {
	var s State
	s.AddLine(keyboard, "")
	s.AddLine(mouse, "")

	s.DecreaseQuantity("1")
	require.Len(t, s.Lines, 1)
	require.Equal(t, "2", s.Lines[0].ID)
}

func TestUnknownIDMutationsAreNoops(t *testing.T) {
	var s State
	s.AddLine(keyboard, "")

	s.IncreaseQuantity("999")
	s.DecreaseQuantity("999")
	s.RemoveLine("999")

	require.Len(t, s.Lines, 1)
	require.Equal(t, 1, s.Lines[0].Quantity)
}

func TestRemoveLine(t *testing.T) {
	var s State
	s.AddLine(keyboard, "black")
	s.AddLine(mouse, "")

	s.RemoveLine("1-black")
	require.Len(t, s.Lines, 1)
	require.Equal(t, "2", s.Lines[0].ID)
}

func TestToggleOpenIsInvolution(t *testing.T) {
	var s State
	require.False(t, s.IsOpen)
	s.ToggleOpen()
	require.True(t, s.IsOpen)
	s.ToggleOpen()
	require.False(t, s.IsOpen)
}

func TestResetLinesKeepsOpenFlag(t *testing.T) {
	var s State
	s.AddLine(keyboard, "")
	s.ToggleOpen()

	s.ResetLines()
	require.Empty(t, s.Lines)
	require.True(t, s.IsOpen)
}

func TestComputeTotals(t *testing.T) {
	var s State
	s.AddLine(keyboard, "")
	s.IncreaseQuantity("1")

	totals := ComputeTotals(s.Lines)
	require.InDelta(t, 1596.0, totals.Subtotal, 1e-9)
	require.InDelta(t, 159.6, totals.Discount, 1e-9)
	require.InDelta(t, 1436.4, totals.Total, 1e-9)
}

func TestComputeTotalsSkipsMissingProduct(t *testing.T) {
	lines := []Line{
		{ID: "1", Product: keyboard, Quantity: 1},
		{ID: "ghost", Product: nil, Quantity: 5},
	}
	totals := ComputeTotals(lines)
	require.InDelta(t, 798.0, totals.Subtotal, 1e-9)
	require.InDelta(t, 718.2, totals.Total, 1e-9)
}
