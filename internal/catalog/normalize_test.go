package catalog

import (
	"reflect"
	"testing"

	"growkit-storefront/internal/domain"
)

func TestNormalizeVariantsFromDecodedArray(t *testing.T) {
	raw := []any{
		map[string]any{"id": "v1", "unit": "l", "size": "2.5", "price": 249.0},
		map[string]any{"id": "v2", "unit": "kg", "size": "5", "price": "399"},
	}
	got := NormalizeVariants(raw)
	want := []domain.Variant{
		{ID: "v1", Unit: domain.UnitLitre, Size: "2.5", Price: 249},
		{ID: "v2", Unit: domain.UnitKilogram, Size: "5", Price: 399},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeVariants = %+v, want %+v", got, want)
	}
}

func TestNormalizeVariantsFromJSONString(t *testing.T) {
	raw := `[{"id":"v1","unit":"l","size":"5","price":399}]`
	got := NormalizeVariants(raw)
	if len(got) != 1 || got[0].ID != "v1" || got[0].Price != 399 {
		t.Fatalf("NormalizeVariants(string) = %+v", got)
	}
	if NormalizeVariants("not json") != nil {
		t.Fatalf("malformed JSON string must yield nil")
	}
}

func TestNormalizeVariantsDropsInvalidRecordsWhole(t *testing.T) {
	raw := []any{
		map[string]any{"id": "", "unit": "l", "size": "5", "price": 100.0},      // no id
		map[string]any{"id": "v1", "unit": "oz", "size": "5", "price": 100.0},   // unit outside set
		map[string]any{"id": "v2", "unit": "l", "size": "  ", "price": 100.0},   // blank size
		map[string]any{"id": "v3", "unit": "l", "size": "5", "price": 0.0},      // zero price
		map[string]any{"id": "v4", "unit": "l", "size": "5", "price": -10.0},    // negative price
		map[string]any{"id": "v5", "unit": "l", "size": "5", "price": "cheap"},  // unparsable price
		map[string]any{"id": "v6", "unit": "l", "size": "5", "price": 80.0},     // valid
		"not an object",
	}
	got := NormalizeVariants(raw)
	if len(got) != 1 || got[0].ID != "v6" {
		t.Fatalf("expected only v6 to survive, got %+v", got)
	}
}

func TestNormalizeVariantsNilAndUnknownShapes(t *testing.T) {
	if NormalizeVariants(nil) != nil {
		t.Errorf("nil input must yield nil")
	}
	if NormalizeVariants(42) != nil {
		t.Errorf("scalar input must yield nil")
	}
}

func TestCoerceImages(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want []string
	}{
		{"decoded array", []any{"a.jpg", " ", "b.jpg"}, []string{"a.jpg", "b.jpg"}},
		{"string slice", []string{" a.jpg ", ""}, []string{"a.jpg"}},
		{"json string", `["a.jpg","b.jpg"]`, []string{"a.jpg", "b.jpg"}},
		{"malformed json", `[broken`, nil},
		{"nil", nil, nil},
		{"scalar", 7, nil},
	}
	for _, tc := range cases {
		if got := CoerceImages(tc.raw); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: CoerceImages = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"249", 249, true},
		{"249.99", 249.99, true},
		{"R249.99", 249.99, true},
		{" R 1 299,50 ", 1299.5, true},
		{"0", 0, true},
		{"", 0, false},
		{"R", 0, false},
		{"-5", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParsePrice(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePrice(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNormCategory(t *testing.T) {
	cases := map[string]string{
		"Bulk Herbal Products":   "bulk herbal products",
		"  bulk   HERBAL products ": "bulk herbal products",
		"Grain & Cultures":       "grain and cultures",
		"Grain and Cultures":     "grain and cultures",
		"":                       "",
	}
	for in, want := range cases {
		if got := NormCategory(in); got != want {
			t.Errorf("NormCategory(%q) = %q, want %q", in, got, want)
		}
	}
}
