package shipping

import (
	"math"
	"testing"

	"growkit-storefront/internal/domain"
)

func TestComputeBrackets(t *testing.T) {
	cases := []struct {
		kg      float64
		fee     float64
		bracket Bracket
	}{
		{0, 100, BracketUpTo5},
		{5, 100, BracketUpTo5},
		{5.0001, 140, BracketUpTo10},
		{10, 140, BracketUpTo10},
		{15, 180, BracketUpTo15},
		{20, 220, BracketUpTo20},
		{21, 260, BracketOver20},
		{25, 260, BracketOver20},
		{25.0001, 300, BracketOver20},
		{26, 300, BracketOver20},
		{30, 300, BracketOver20},
		{30.5, 340, BracketOver20},
	}
	for _, tc := range cases {
		got := Compute(tc.kg)
		if got.Fee != tc.fee || got.Bracket != tc.bracket {
			t.Errorf("Compute(%v) = fee %v bracket %s, want fee %v bracket %s",
				tc.kg, got.Fee, got.Bracket, tc.fee, tc.bracket)
		}
		if got.KgUsed != tc.kg {
			t.Errorf("Compute(%v) KgUsed = %v", tc.kg, got.KgUsed)
		}
	}
}

func TestComputeSanitizesMalformedInput(t *testing.T) {
	zero := Compute(0)
	for _, kg := range []float64{-1, -0.0001, math.NaN(), math.Inf(1), math.Inf(-1)} {
		got := Compute(kg)
		if got != zero {
			t.Errorf("Compute(%v) = %+v, want %+v", kg, got, zero)
		}
	}
	if zero.Fee != 100 || zero.Bracket != BracketUpTo5 || zero.KgUsed != 0 {
		t.Fatalf("Compute(0) = %+v", zero)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	for _, kg := range []float64{0, 4.2, 10, 19.99, 27.3} {
		if Compute(kg) != Compute(kg) {
			t.Fatalf("Compute(%v) not deterministic", kg)
		}
	}
}

func TestKitWeightKg(t *testing.T) {
	cases := map[string]float64{
		"1L":      1,
		"2.5L":    1.5,
		"2,5L":    1.5,
		"5L":      2.5,
		"20L":     10,
		"Box":     1.5,
		" 5L ":    2.5,
		"unknown": 0,
		"":        0,
	}
	for label, want := range cases {
		if got := KitWeightKg(label); got != want {
			t.Errorf("KitWeightKg(%q) = %v, want %v", label, got, want)
		}
	}
}

func TestVariantWeightKg(t *testing.T) {
	cases := []struct {
		variant domain.Variant
		want    float64
	}{
		{domain.Variant{Unit: domain.UnitLitre, Size: "2.5"}, 1.5},
		{domain.Variant{Unit: domain.UnitLitre, Size: "5"}, 2.5},
		{domain.Variant{Unit: domain.UnitLitre, Size: "3"}, 0},
		{domain.Variant{Unit: domain.UnitKilogram, Size: "5"}, 5},
		{domain.Variant{Unit: domain.UnitKilogram, Size: "2,5"}, 2.5},
		{domain.Variant{Unit: domain.UnitKilogram, Size: "-1"}, 0},
		{domain.Variant{Unit: domain.UnitKilogram, Size: "abc"}, 0},
		{domain.Variant{Unit: "oz", Size: "5"}, 0},
	}
	for _, tc := range cases {
		if got := VariantWeightKg(tc.variant); got != tc.want {
			t.Errorf("VariantWeightKg(%+v) = %v, want %v", tc.variant, got, tc.want)
		}
	}
}
