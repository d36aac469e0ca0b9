package domain

// CartLine is one entry in a shopper's cart. ID is the merge key: a product
// id, or product id + variant id for variant purchases. UnitPrice and
// ChargeableKg are captured at add time; the first add wins on merge.
type CartLine struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int     `json:"quantity"`
	ChargeableKg float64 `json:"chargeableKg"`
}
