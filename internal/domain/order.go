package domain

import "time"

// OrderStatePlaced is the only state the dummy checkout produces; there is
// no payment gateway behind it.
const OrderStatePlaced = "placed"

// Address is the shipping address captured at checkout.
type Address struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Suburb     string `json:"suburb"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
}

// Order is a snapshot of a cart at checkout time, totals included, so later
// price or weight edits to the catalog never rewrite history.
type Order struct {
	ID             string     `json:"id"`
	Lines          []CartLine `json:"lines"`
	ItemsTotal     float64    `json:"itemsTotal"`
	TotalKg        float64    `json:"totalChargeableKg"`
	CourierFee     float64    `json:"courierFee"`
	CourierBracket string     `json:"courierBracket"`
	GrandTotal     float64    `json:"grandTotal"`
	Address        Address    `json:"address"`
	State          string     `json:"state"`
	CreatedAt      time.Time  `json:"createdAt"`
}
