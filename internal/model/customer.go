package model

import "time"

// Customer represents a single company in the customer base. Only ID
// participates in lifecycle classification; every other field is carried
// through untouched for callers to display.
type Customer struct {
	CreatedAt   time.Time
	ID          string
	CompanyName string
	Sector      string
	Country     string
	ContactName string
	Email       string
	Phone       string
}
