package model

import "time"

// Invoice represents a single issued invoice correlated to a customer.
//
// CustomerID is the stable correlation key. CustomerName is a legacy key
// from imports that predate stable identifiers; it is consulted only when
// CustomerID is empty.
type Invoice struct {
	Date         time.Time // issuance timestamp; zero when the source date was unparseable
	CreatedAt    time.Time // record creation time, used as an issuance fallback
	ID           string
	CustomerID   string
	CustomerName string
	Number       string
	Currency     string
	Amount       float64
}

// Matches reports whether this invoice correlates to the given customer.
// The stable CustomerID wins; the legacy CustomerName match applies only
// when no ID was recorded.
func (i Invoice) Matches(customerID string) bool {
	if i.CustomerID != "" {
		return i.CustomerID == customerID
	}
	return i.CustomerName != "" && i.CustomerName == customerID
}

// MatchedByName reports whether a correlation to the given customer would
// rely on the legacy name fallback. Callers can surface this as a
// data-quality signal to the upstream data provider.
func (i Invoice) MatchedByName(customerID string) bool {
	return i.CustomerID == "" && i.CustomerName == customerID
}

// IssuedAt returns the usable issuance timestamp for this invoice: Date
// when set, otherwise CreatedAt. The second return is false when neither
// is set, in which case the invoice carries no usable point in time and
// must be excluded from date arithmetic.
func (i Invoice) IssuedAt() (time.Time, bool) {
	if !i.Date.IsZero() {
		return i.Date, true
	}
	if !i.CreatedAt.IsZero() {
		return i.CreatedAt, true
	}
	return time.Time{}, false
}
