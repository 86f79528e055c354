package models

import "time"

type Product struct {
	ID        string
	Name      string
	Price     float64
	Sold      bool
	ImageRef  string
	OwnerID   string
	CreatedAt time.Time
}

// NewProduct is a validated product ready to be written.
type NewProduct struct {
	Name     string
	Price    float64
	ImageRef string
}
