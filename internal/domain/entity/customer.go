package entity

import "time"

// Customer places sales orders. Contact fields are optional.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"` // Required, at most 200 characters.
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Country   string    `json:"country,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
