package domain

import "time"

// FAQ is one question/answer entry shown on the storefront, ordered by
// Position ascending.
type FAQ struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}
