package cart

import (
	"math"
	"testing"

	"growkit-storefront/internal/domain"
	"growkit-storefront/internal/shipping"
)

func line(id string, price, kg float64) domain.CartLine {
	return domain.CartLine{ID: id, Name: "Line " + id, UnitPrice: price, ChargeableKg: kg}
}

func TestAddLineAppendsAndMerges(t *testing.T) {
	s := NewStore()
	s.AddLine(line("a", 249, 2.5), 2)
	s.AddLine(line("b", 399, 5), 1)

	lines := s.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Quantity != 2 || lines[1].Quantity != 1 {
		t.Fatalf("unexpected quantities: %+v", lines)
	}

	// Same id merges; the second call's price and weight are discarded.
	s.AddLine(domain.CartLine{ID: "a", Name: "renamed", UnitPrice: 999, ChargeableKg: 99}, 3)
	lines = s.Lines()
	if len(lines) != 2 {
		t.Fatalf("merge added a line: %+v", lines)
	}
	got := lines[0]
	if got.Quantity != 5 {
		t.Errorf("merged quantity = %d, want 5", got.Quantity)
	}
	if got.UnitPrice != 249 || got.ChargeableKg != 2.5 || got.Name != "Line a" {
		t.Errorf("first-added price/weight/name must win, got %+v", got)
	}
}

func TestAddLineDefaultsNonPositiveQuantity(t *testing.T) {
	s := NewStore()
	s.AddLine(line("a", 10, 1), 0)
	s.AddLine(line("b", 10, 1), -4)

	for _, l := range s.Lines() {
		if l.Quantity != 1 {
			t.Errorf("line %s quantity = %d, want 1", l.ID, l.Quantity)
		}
	}
}

func TestSetQuantity(t *testing.T) {
	s := NewStore()
	s.AddLine(line("a", 10, 1), 1)

	s.SetQuantity("a", 2.7)
	if got := s.Lines()[0].Quantity; got != 2 {
		t.Errorf("fractional quantity floored to %d, want 2", got)
	}

	s.SetQuantity("missing", 5) // no-op
	if len(s.Lines()) != 1 {
		t.Fatalf("unknown id mutated the cart")
	}

	s.SetQuantity("a", 0)
	if len(s.Lines()) != 0 {
		t.Fatalf("quantity 0 must delete the line")
	}

	s.AddLine(line("a", 10, 1), 1)
	s.SetQuantity("a", -3)
	if len(s.Lines()) != 0 {
		t.Fatalf("negative quantity must delete the line")
	}

	s.AddLine(line("a", 10, 1), 1)
	s.SetQuantity("a", math.NaN())
	if len(s.Lines()) != 0 {
		t.Fatalf("NaN quantity must delete the line")
	}
}

func TestRemoveLineAndClear(t *testing.T) {
	s := NewStore()
	s.AddLine(line("a", 10, 1), 1)
	s.AddLine(line("b", 20, 2), 1)

	s.RemoveLine("missing") // no-op
	if len(s.Lines()) != 2 {
		t.Fatalf("unknown id mutated the cart")
	}

	s.RemoveLine("a")
	lines := s.Lines()
	if len(lines) != 1 || lines[0].ID != "b" {
		t.Fatalf("unexpected lines after remove: %+v", lines)
	}

	s.Clear()
	if len(s.Lines()) != 0 {
		t.Fatalf("clear left lines behind")
	}
}

func TestTotalsEmptyCart(t *testing.T) {
	s := NewStore()
	s.AddLine(line("a", 10, 1), 1)
	s.Clear()

	got := s.Totals()
	want := Totals{ItemsTotal: 0, TotalKg: 0, CourierFee: 100, CourierBracket: shipping.BracketUpTo5, GrandTotal: 100}
	if got != want {
		t.Fatalf("Totals() = %+v, want %+v", got, want)
	}
}

func TestTotalsTwoLineScenario(t *testing.T) {
	s := NewStore()
	s.AddLine(line("lion-25", 249, 2.5), 2)
	s.AddLine(line("lion-50", 399, 5), 1)

	got := s.Totals()
	if got.ItemsTotal != 897 {
		t.Errorf("ItemsTotal = %v, want 897", got.ItemsTotal)
	}
	if got.TotalKg != 10 {
		t.Errorf("TotalKg = %v, want 10", got.TotalKg)
	}
	if got.CourierBracket != shipping.BracketUpTo10 || got.CourierFee != 140 {
		t.Errorf("courier = %v %s, want 140 %s", got.CourierFee, got.CourierBracket, shipping.BracketUpTo10)
	}
	if got.GrandTotal != 1037 {
		t.Errorf("GrandTotal = %v, want 1037", got.GrandTotal)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	s := NewStore()
	s.AddLine(line("a", 10, 1), 1)

	lines := s.Lines()
	lines[0].Quantity = 100
	if got := s.Lines()[0].Quantity; got != 1 {
		t.Fatalf("caller mutated internal state, quantity = %d", got)
	}
}
