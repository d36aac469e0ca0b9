package catalog

import (
	"math"
	"testing"

	"growkit-storefront/internal/domain"
)

func kitProduct() domain.Product {
	return domain.Product{
		ID:           "lion-25",
		Name:         "Lion's Mane Grow Kit",
		Category:     "Mushroom Grow Kits",
		BasePrice:    249,
		ChargeableKg: 2.5,
		InStock:      true,
		StockCount:   10,
		Active:       true,
	}
}

func variantProduct() domain.Product {
	p := kitProduct()
	p.Variants = []domain.Variant{
		{ID: "v-25", Unit: domain.UnitLitre, Size: "2.5", Price: 100},
		{ID: "v-50", Unit: domain.UnitLitre, Size: "5", Price: 80},
	}
	return p
}

func newTestGate() *Gate {
	return NewGate([]string{"Bulk Herbal Products"})
}

func TestIsInStockRequiresBothSignals(t *testing.T) {
	cases := []struct {
		flag  bool
		count int
		want  bool
	}{
		{true, 10, true},
		{true, 0, false},
		{false, 10, false},
		{false, 0, false},
		{true, -1, false},
	}
	for _, tc := range cases {
		p := kitProduct()
		p.InStock = tc.flag
		p.StockCount = tc.count
		if got := IsInStock(p); got != tc.want {
			t.Errorf("IsInStock(flag=%v count=%d) = %v, want %v", tc.flag, tc.count, got, tc.want)
		}
	}
}

func TestResolveUnitPrice(t *testing.T) {
	plain := kitProduct()
	if got := ResolveUnitPrice(plain, ""); got != 249 {
		t.Errorf("variant-less product price = %v, want base 249", got)
	}

	withVariants := variantProduct()
	if got := ResolveUnitPrice(withVariants, "v-25"); got != 100 {
		t.Errorf("selected variant price = %v, want 100", got)
	}
	// No or invalid selection falls back to the cheapest variant, never 0.
	if got := ResolveUnitPrice(withVariants, ""); got != 80 {
		t.Errorf("fallback price = %v, want 80", got)
	}
	if got := ResolveUnitPrice(withVariants, "bogus"); got != 80 {
		t.Errorf("fallback price for unknown id = %v, want 80", got)
	}
}

func TestCanPurchase(t *testing.T) {
	g := newTestGate()

	if !g.CanPurchase(kitProduct(), "", 1) {
		t.Fatalf("plain in-stock purchase refused")
	}

	enquiry := kitProduct()
	enquiry.Category = "bulk herbal  PRODUCTS"
	if g.CanPurchase(enquiry, "", 1) {
		t.Errorf("enquiry-only category must never enter the cart")
	}

	depleted := kitProduct()
	depleted.StockCount = 0
	if g.CanPurchase(depleted, "", 1) {
		t.Errorf("flagged in-stock with zero units must be refused")
	}

	withVariants := variantProduct()
	if g.CanPurchase(withVariants, "", 1) {
		t.Errorf("variants exist but none selected: must be refused regardless of stock")
	}
	if g.CanPurchase(withVariants, "bogus", 1) {
		t.Errorf("unresolvable variant id must be refused")
	}
	if !g.CanPurchase(withVariants, "v-50", 1) {
		t.Errorf("resolvable variant refused")
	}

	if g.CanPurchase(kitProduct(), "", 0) || g.CanPurchase(kitProduct(), "", -2) {
		t.Errorf("non-positive quantity must be refused")
	}
	if g.CanPurchase(kitProduct(), "", 11) {
		t.Errorf("quantity above stock must be refused")
	}
	if !g.CanPurchase(kitProduct(), "", 10) {
		t.Errorf("quantity equal to stock refused")
	}
}

func TestClampQuantity(t *testing.T) {
	p := kitProduct() // stock 10
	cases := []struct {
		in   float64
		want int
	}{
		{0, 1},
		{-5, 1},
		{1, 1},
		{2.7, 2},
		{10, 10},
		{11, 10},
		{math.NaN(), 1},
		{math.Inf(1), 10},
	}
	for _, tc := range cases {
		if got := ClampQuantity(p, tc.in); got != tc.want {
			t.Errorf("ClampQuantity(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}

	empty := kitProduct()
	empty.StockCount = 0
	if got := ClampQuantity(empty, 5); got != 1 {
		t.Errorf("zero stock clamps into [1,1], got %d", got)
	}
}

func TestResolveChargeableKg(t *testing.T) {
	p := variantProduct()
	v := ResolveVariant(p, "v-50")
	if v == nil {
		t.Fatalf("variant not resolvable")
	}
	if got := ResolveChargeableKg(p, v); got != 2.5 {
		t.Errorf("5L variant weight = %v, want 2.5", got)
	}

	// Unknown variant sizes fall back to the product's own weight.
	odd := p
	odd.Variants = []domain.Variant{{ID: "v-x", Unit: domain.UnitLitre, Size: "3", Price: 50}}
	if got := ResolveChargeableKg(odd, &odd.Variants[0]); got != 2.5 {
		t.Errorf("fallback weight = %v, want product's 2.5", got)
	}

	if got := ResolveChargeableKg(p, nil); got != 2.5 {
		t.Errorf("no variant: weight = %v, want base 2.5", got)
	}
}
