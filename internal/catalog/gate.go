package catalog

import (
	"math"

	"growkit-storefront/internal/domain"
	"growkit-storefront/internal/shipping"
)

// Gate decides whether a unit of a catalog product can legally be added to
// a cart right now, and at what price. It runs before the cart store's add
// operation and never mutates anything; a negative answer is an ordinary
// result, not an error.
type Gate struct {
	enquiryOnly map[string]struct{}
}

// NewGate builds a gate that treats the given categories as enquiry-only.
// Matching goes through NormCategory, so spelling variants of the same
// category all hit.
func NewGate(enquiryCategories []string) *Gate {
	set := make(map[string]struct{}, len(enquiryCategories))
	for _, c := range enquiryCategories {
		if n := NormCategory(c); n != "" {
			set[n] = struct{}{}
		}
	}
	return &Gate{enquiryOnly: set}
}

// IsEnquiryOnly reports whether products in this category never enter the
// cart and route to the enquiry channel instead.
func (g *Gate) IsEnquiryOnly(category string) bool {
	_, ok := g.enquiryOnly[NormCategory(category)]
	return ok
}

// IsInStock requires both the manual flag and a positive recorded count.
// The two fields can disagree (a stale flag against a depleted count, or
// the reverse); the conjunction is the conservative, sale-blocking choice.
func IsInStock(p domain.Product) bool {
	return p.InStock && p.StockCount > 0
}

// ResolveVariant returns the variant with the given id, or nil when the
// product has no variants or the id does not match one.
func ResolveVariant(p domain.Product, variantID string) *domain.Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

// ResolveUnitPrice returns the price one unit sells for: the selected
// variant's price, the lowest-priced variant when no valid selection was
// made (so a price is always displayable before the shopper picks one), or
// the base price for variant-less products.
func ResolveUnitPrice(p domain.Product, variantID string) float64 {
	if len(p.Variants) == 0 {
		return p.BasePrice
	}
	if v := ResolveVariant(p, variantID); v != nil {
		return v.Price
	}
	lowest := p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price < lowest {
			lowest = v.Price
		}
	}
	return lowest
}

// ResolveChargeableKg returns the shipping weight of one unit: the selected
// variant's derived weight when it is known, the product's own chargeable
// weight otherwise.
func ResolveChargeableKg(p domain.Product, v *domain.Variant) float64 {
	if v != nil {
		if kg := shipping.VariantWeightKg(*v); kg > 0 {
			return kg
		}
	}
	return p.ChargeableKg
}

// CanPurchase reports whether the proposed purchase is permissible right
// now. All conditions must hold: the category allows cart sales, the
// product is in stock, a variant is resolvable when variants exist, and the
// quantity is a positive integer within stock.
func (g *Gate) CanPurchase(p domain.Product, variantID string, quantity int) bool {
	if g.IsEnquiryOnly(p.Category) {
		return false
	}
	if !IsInStock(p) {
		return false
	}
	if len(p.Variants) > 0 && ResolveVariant(p, variantID) == nil {
		return false
	}
	if quantity < 1 {
		return false
	}
	return quantity <= p.StockCount
}

// ClampQuantity floors a proposed quantity and clamps it into
// [1, max(1, stockCount)], so the UI can never present or submit an
// out-of-range value.
func ClampQuantity(p domain.Product, quantity float64) int {
	max := p.StockCount
	if max < 1 {
		max = 1
	}
	if math.IsNaN(quantity) || quantity < 1 {
		return 1
	}
	if math.IsInf(quantity, 1) || quantity > float64(max) {
		return max
	}
	n := int(math.Floor(quantity))
	if n > max {
		return max
	}
	return n
}
