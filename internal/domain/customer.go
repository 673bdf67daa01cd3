package domain

import "time"

// Customer aggregates the identity behind rental requests. Phone is the
// unique key: every request upserts the customer under its phone number.
// TotalSpent and RequestCount are display aggregates recomputed from requests
// at read time; the stored values are not authoritative.
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	TotalSpent   float64   `json:"totalSpent"`
	RequestCount int       `json:"requestCount"`
	Origin       Origin    `json:"origin,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
