// Package catalog turns loose catalog rows into the strict domain shapes
// and decides purchase eligibility. All shape checking happens here, once,
// at the boundary; downstream code only ever sees valid records.
package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"growkit-storefront/internal/domain"
)

// NormalizeVariants accepts whatever the store delivered for the variants
// column: a decoded JSON array, a JSON-encoded string, raw bytes, or
// nothing. Records missing an id, a unit from the closed set, a size, or a
// finite positive price are dropped whole.
func NormalizeVariants(raw any) []domain.Variant {
	var items []any
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		items = v
	case string:
		if err := json.Unmarshal([]byte(v), &items); err != nil {
			return nil
		}
	case []byte:
		if err := json.Unmarshal(v, &items); err != nil {
			// Some rows double-encode the column as a JSON string.
			var s string
			if json.Unmarshal(v, &s) != nil {
				return nil
			}
			return NormalizeVariants(s)
		}
	default:
		return nil
	}

	var out []domain.Variant
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		variant := domain.Variant{
			ID:    coerceString(fields["id"]),
			Unit:  domain.Unit(coerceString(fields["unit"])),
			Size:  strings.TrimSpace(coerceString(fields["size"])),
			Price: coerceFloat(fields["price"]),
		}
		if variant.ID == "" || !domain.ValidUnit(variant.Unit) || variant.Size == "" {
			continue
		}
		if math.IsNaN(variant.Price) || math.IsInf(variant.Price, 0) || variant.Price <= 0 {
			continue
		}
		out = append(out, variant)
	}
	return out
}

// CoerceImages accepts an image list in any of the shapes seen in the
// store (array, JSON-encoded string, raw bytes, absent) and returns the
// non-blank URLs.
func CoerceImages(raw any) []string {
	var items []any
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		items = v
	case []string:
		var out []string
		for _, s := range v {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if err := json.Unmarshal([]byte(v), &items); err != nil {
			return nil
		}
	case []byte:
		if err := json.Unmarshal(v, &items); err != nil {
			var s string
			if json.Unmarshal(v, &s) != nil {
				return nil
			}
			return CoerceImages(s)
		}
	default:
		return nil
	}

	var out []string
	for _, item := range items {
		if s := strings.TrimSpace(coerceString(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ParsePrice parses a currency string from a form field: optional leading
// "R", comma accepted as decimal separator. Returns false for anything that
// does not parse to a finite non-negative number, so callers get a defined
// absence instead of a NaN or a negative price.
func ParsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R")
	s = strings.ReplaceAll(s, " ", "")
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0, false
	}
	return n, true
}

// NormCategory folds case, surrounding and repeated whitespace, and the
// "&" vs "and" spelling so category strings from different sources compare
// equal.
func NormCategory(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "&", "and")
	return strings.Join(strings.Fields(s), " ")
}

func coerceString(v any) string {
	s, _ := v.(string)
	return s
}

func coerceFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}
