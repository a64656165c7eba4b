// Package model defines the core domain models used throughout the application.
package model

import "time"

// Status is a customer or lead lifecycle state.
type Status string

// Lifecycle status constants.
const (
	StatusNew      Status = "new"
	StatusActive   Status = "active"
	StatusFavorite Status = "favorite"
	StatusPassive  Status = "passive"
)

// Result describes how a customer was classified, together with the
// numeric evidence behind the decision so callers can sort, filter and
// display without recomputing.
type Result struct {
	LastInvoiceDate        time.Time // zero when the customer has no invoices
	Status                 Status
	Label                  string
	Description            string
	InvoiceCount           int
	InvoicesLastYear       int
	MonthsSinceLastInvoice int // whole 30-day periods; set only for passive customers
}

// LeadResult describes how a lead was classified against the inactivity
// threshold. ShouldTransfer is a signal that the lead crossed into the
// passive pipeline; moving it there is the caller's concern.
type LeadResult struct {
	Status            Status
	DaysSinceActivity int
	ShouldTransfer    bool
	DaysUntilPassive  int // set only while the lead is still active
}
