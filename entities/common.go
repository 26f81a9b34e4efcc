package entities

import "time"

type Timestamp struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Address is stored inline on its owner with a column prefix.
type Address struct {
	FirstLine  string `json:"first_line"`
	SecondLine string `json:"second_line,omitempty"`
	Pincode    string `json:"pincode"`
}
