// Package shipping computes the tiered courier fee from a chargeable-weight
// total. Everything here is pure; callers re-run Compute whenever the cart
// changes.
package shipping

import (
	"math"
	"strconv"
	"strings"

	"growkit-storefront/internal/domain"
)

// Bracket is one of the fixed, named courier weight ranges. Exactly one
// bracket applies to any sanitized weight.
type Bracket string

const (
	BracketUpTo5  Bracket = "0-5kg"
	BracketUpTo10 Bracket = "5-10kg"
	BracketUpTo15 Bracket = "10-15kg"
	BracketUpTo20 Bracket = "15-20kg"
	BracketOver20 Bracket = "over-20kg"
)

// Quote is the result of a courier fee lookup. KgUsed is the sanitized
// weight the fee was computed from (always >= 0).
type Quote struct {
	Fee     float64 `json:"courierFee"`
	Bracket Bracket `json:"bracket"`
	KgUsed  float64 `json:"kgUsed"`
}

// Courier rates:
//
//	0-5kg   => R100
//	5-10kg  => R140
//	10-15kg => R180
//	15-20kg => R220
//
// Over 20kg the fee auto-extends in 5kg blocks at +R40 per block, any part
// of a block billed as a full block: 21kg -> 260, 25kg -> 260, 26kg -> 300.

// Compute maps a chargeable-weight total to a courier fee and bracket.
// Negative or non-finite input is clamped to 0 so a malformed total can
// never produce a negative or undefined fee.
func Compute(totalKg float64) Quote {
	kg := totalKg
	if math.IsNaN(kg) || math.IsInf(kg, 0) || kg < 0 {
		kg = 0
	}

	switch {
	case kg <= 5:
		return Quote{Fee: 100, Bracket: BracketUpTo5, KgUsed: kg}
	case kg <= 10:
		return Quote{Fee: 140, Bracket: BracketUpTo10, KgUsed: kg}
	case kg <= 15:
		return Quote{Fee: 180, Bracket: BracketUpTo15, KgUsed: kg}
	case kg <= 20:
		return Quote{Fee: 220, Bracket: BracketUpTo20, KgUsed: kg}
	}

	blocks := math.Ceil((kg - 20) / 5)
	return Quote{Fee: 220 + 40*blocks, Bracket: BracketOver20, KgUsed: kg}
}

// kitWeightsKg maps grow-kit size labels to the chargeable weight of one
// unit. These are courier-billing weights, not physical weights.
var kitWeightsKg = map[string]float64{
	"1L":   1,
	"2.5L": 1.5,
	"2,5L": 1.5, // comma-decimal labels appear in older catalog rows
	"5L":   2.5,
	"20L":  10,
	"Box":  1.5,
}

// KitWeightKg returns the chargeable weight for a grow-kit size label, or 0
// when the label is unknown.
func KitWeightKg(sizeLabel string) float64 {
	return kitWeightsKg[strings.TrimSpace(sizeLabel)]
}

// VariantWeightKg derives the chargeable weight of one unit of a variant.
// Mass variants weigh their own size; volume variants go through the kit
// weight table. Unknown sizes fall back to 0 rather than failing a cart
// operation.
func VariantWeightKg(v domain.Variant) float64 {
	size := strings.TrimSpace(v.Size)
	switch v.Unit {
	case domain.UnitKilogram:
		kg, err := strconv.ParseFloat(strings.ReplaceAll(size, ",", "."), 64)
		if err != nil || math.IsNaN(kg) || math.IsInf(kg, 0) || kg < 0 {
			return 0
		}
		return kg
	case domain.UnitLitre:
		return KitWeightKg(size + "L")
	}
	return 0
}
