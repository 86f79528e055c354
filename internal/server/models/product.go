package models

import "time"

// Product is a document of the products collection. OwnerID is set once,
// from the authenticated caller, and CreatedAt by the database clock.
type Product struct {
	ID        string
	Name      string
	Price     float64
	Sold      bool
	ImageRef  string
	OwnerID   string
	CreatedAt time.Time
}
