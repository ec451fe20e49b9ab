// Package cart holds the server-side shopping cart: a small state machine
// over an ordered list of lines plus a sidebar visibility flag. Only the
// lines are persisted; the flag lives for the session.
package cart

import (
	"strconv"

	"storefront-api/internal/catalog"
)

// Line is one cart entry. The product snapshot is captured at add time so a
// later catalogue edit does not silently reprice an open cart.
type Line struct {
	ID       string           `json:"id"`
	Product  *catalog.Product `json:"product"`
	Variant  string           `json:"variant,omitempty"`
	Quantity int              `json:"quantity"`
}

// State is the full cart state for one session.
type State struct {
	ID     string `json:"id"`
	Lines  []Line `json:"items"`
	IsOpen bool   `json:"isOpen"`
}

// LineID derives the identity of a cart line. Lines for the same product in
// different variants are distinct entries.
func LineID(productID int64, variant string) string {
	id := strconv.FormatInt(productID, 10)
	if variant == "" {
		return id
	}
	return id + "-" + variant
}

// AddLine inserts a new line with quantity 1, or bumps the quantity when a
// line with the same identity already exists.
func (s *State) AddLine(p *catalog.Product, variant string) {
	if p == nil {
		return
	}
	id := LineID(p.ID, variant)
	for i := range s.Lines {
		if s.Lines[i].ID == id {
			s.Lines[i].Quantity++
			return
		}
	}
	s.Lines = append(s.Lines, Line{ID: id, Product: p, Variant: variant, Quantity: 1})
}

// IncreaseQuantity bumps the quantity of the identified line. Unknown ids
// are ignored.
func (s *State) IncreaseQuantity(id string) {
	for i := range s.Lines {
		if s.Lines[i].ID == id {
			s.Lines[i].Quantity++
			return
		}
	}
}

// DecreaseQuantity lowers the quantity of the identified line, removing the
// line entirely when it would drop to zero. Unknown ids are ignored.
func (s *State) DecreaseQuantity(id string) {
	for i := range s.Lines {
		if s.Lines[i].ID != id {
			continue
		}
		if s.Lines[i].Quantity <= 1 {
			s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			return
		}
		s.Lines[i].Quantity--
		return
	}
}

// RemoveLine drops the identified line regardless of quantity. Unknown ids
// are ignored.
func (s *State) RemoveLine(id string) {
	for i := range s.Lines {
		if s.Lines[i].ID == id {
			s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			return
		}
	}
}

// ToggleOpen flips the sidebar visibility flag.
func (s *State) ToggleOpen() {
	s.IsOpen = !s.IsOpen
}

// ResetLines empties the cart. The visibility flag is untouched.
func (s *State) ResetLines() {
	s.Lines = nil
}
