package model

import "time"

// Lead represents a sales opportunity that has not converted to a
// customer yet.
type Lead struct {
	LastActivity time.Time // most recent recorded interaction; zero when unknown
	CreatedAt    time.Time
	ID           string
	Name         string
	Company      string
	Source       string
	Stage        string
	Value        float64
}

// ActivityAt returns the reference timestamp for passivity calculations:
// LastActivity when recorded, otherwise CreatedAt. The second return is
// false when the lead carries no usable timestamp at all.
func (l Lead) ActivityAt() (time.Time, bool) {
	if !l.LastActivity.IsZero() {
		return l.LastActivity, true
	}
	if !l.CreatedAt.IsZero() {
		return l.CreatedAt, true
	}
	return time.Time{}, false
}
