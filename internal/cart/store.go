// Package cart holds the in-memory cart store and the session manager that
// owns one store per shopper session. Nothing here is persisted; a cart
// lives exactly as long as its session.
package cart

import (
	"math"
	"sync"

	"growkit-storefront/internal/domain"
	"growkit-storefront/internal/shipping"
)

// Totals are the derived values of a cart, recomputed from the line list on
// every read.
type Totals struct {
	ItemsTotal     float64          `json:"itemsTotal"`
	TotalKg        float64          `json:"totalChargeableKg"`
	CourierFee     float64          `json:"courierFee"`
	CourierBracket shipping.Bracket `json:"courierBracket"`
	GrandTotal     float64          `json:"grandTotal"`
}

// Store owns the mutable line list of one cart. All access goes through its
// methods; callers never hold a reference into the list. Every operation
// sanitizes its input instead of erroring, so the cart can always be
// rendered and totalled.
type Store struct {
	mu    sync.Mutex
	lines []domain.CartLine
}

func NewStore() *Store {
	return &Store{}
}

// AddLine merges a candidate line into the cart. An existing line with the
// same id has its quantity incremented and keeps its original price and
// weight; otherwise the candidate is appended. A non-positive quantity
// defaults to 1. The candidate's own Quantity field is ignored.
func (s *Store) AddLine(candidate domain.CartLine, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == candidate.ID {
			s.lines[i].Quantity += quantity
			return
		}
	}
	candidate.Quantity = quantity
	s.lines = append(s.lines, candidate)
}

// SetQuantity replaces a line's quantity. The value is floored and clamped
// to >= 0; zero deletes the line. Unknown ids are a no-op.
func (s *Store) SetQuantity(id string, quantity float64) {
	next := 0
	if !math.IsNaN(quantity) && !math.IsInf(quantity, 0) && quantity > 0 {
		next = int(math.Floor(quantity))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID != id {
			continue
		}
		if next <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = next
		}
		return
	}
}

// RemoveLine deletes the line with the given id; no-op when absent.
func (s *Store) RemoveLine(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the line list.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a copy of the current line list.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Totals recomputes the derived totals from the current line list.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var itemsTotal, totalKg float64
	for _, line := range s.lines {
		itemsTotal += line.UnitPrice * float64(line.Quantity)
		totalKg += line.ChargeableKg * float64(line.Quantity)
	}

	quote := shipping.Compute(totalKg)
	return Totals{
		ItemsTotal:     itemsTotal,
		TotalKg:        totalKg,
		CourierFee:     quote.Fee,
		CourierBracket: quote.Bracket,
		GrandTotal:     itemsTotal + quote.Fee,
	}
}
