package domain

import "time"

// Unit is the closed set of measurement units a variant may use.
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitLitre    Unit = "l"
)

// ValidUnit reports whether u belongs to the closed unit set.
func ValidUnit(u Unit) bool {
	return u == UnitKilogram || u == UnitLitre
}

// Variant is one purchasable configuration of a product, e.g. a 2.5L kit.
type Variant struct {
	ID    string  `json:"id"`
	Unit  Unit    `json:"unit"`
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// Product is a strict catalog record. Loose rows from the store are
// normalized into this shape once, at the repository boundary.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Description  string    `json:"description,omitempty"`
	BasePrice    float64   `json:"price"`
	ChargeableKg float64   `json:"chargeableKg"`
	InStock      bool      `json:"inStock"`
	StockCount   int       `json:"stockCount"`
	ImageURLs    []string  `json:"images,omitempty"`
	Variants     []Variant `json:"variants,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}
