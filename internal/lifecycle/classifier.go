// Package lifecycle implements the customer activity and lead passivity
// classifiers. Every function is pure: the reference instant is an
// explicit parameter, inputs are never mutated, and malformed records
// degrade to exclusion rather than errors.
package lifecycle

import (
	"fmt"
	"sort"
	"time"

	"github.com/halcyonic/pulse/internal/model"
)

// Config holds the classification thresholds.
type Config struct {
	// PassiveAfterMonths is the number of calendar months without an
	// invoice after which a customer is passive.
	PassiveAfterMonths int
	// FavoriteMinInvoices is the minimum number of invoices inside the
	// recent window for a customer to count as favorite.
	FavoriteMinInvoices int
	// RecentWindowMonths is the size of the trailing window, in calendar
	// months, used for the favorite count.
	RecentWindowMonths int
}

// DefaultConfig returns the default thresholds: passive after 6 months,
// favorite at 3 or more invoices in the trailing 12 months.
func DefaultConfig() Config {
	return Config{
		PassiveAfterMonths:  6,
		FavoriteMinInvoices: 3,
		RecentWindowMonths:  12,
	}
}

// normalize fills zero-valued fields with their defaults so a partially
// populated Config behaves sensibly.
func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.PassiveAfterMonths <= 0 {
		c.PassiveAfterMonths = def.PassiveAfterMonths
	}
	if c.FavoriteMinInvoices <= 0 {
		c.FavoriteMinInvoices = def.FavoriteMinInvoices
	}
	if c.RecentWindowMonths <= 0 {
		c.RecentWindowMonths = def.RecentWindowMonths
	}
	return c
}

// Classifier computes customer lifecycle statuses from invoice history.
type Classifier struct {
	cfg Config
}

// New creates a classifier with the given thresholds. Zero-valued fields
// fall back to DefaultConfig.
func New(cfg Config) *Classifier {
	return &Classifier{cfg: cfg.normalize()}
}

// Config returns the thresholds in effect, with defaults applied.
func (c *Classifier) Config() Config {
	return c.cfg
}

// Classify determines the lifecycle status of the customer identified by
// customerID from the given invoices, evaluated at the instant now.
//
// The invoices slice may contain invoices for other customers; it is
// filtered internally. Rules are evaluated in order and the first match
// wins: no invoices means new, a newest invoice older than the passive
// cutoff means passive regardless of recent volume, a sufficient count
// inside the recent window means favorite, anything else is active.
func (c *Classifier) Classify(customerID string, invoices []model.Invoice, now time.Time) model.Result {
	matched := make([]model.Invoice, 0, len(invoices))
	dates := make([]time.Time, 0, len(invoices))
	for _, inv := range invoices {
		if !inv.Matches(customerID) {
			continue
		}
		issued, ok := inv.IssuedAt()
		if !ok {
			// Unparseable issuance date: the invoice does not exist for
			// classification purposes.
			continue
		}
		matched = append(matched, inv)
		dates = append(dates, issued)
	}

	if len(matched) == 0 {
		return model.Result{
			Status:      model.StatusNew,
			Label:       "New",
			Description: "No invoices recorded yet",
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	last := dates[0]

	passiveCutoff := now.AddDate(0, -c.cfg.PassiveAfterMonths, 0)
	recentCutoff := now.AddDate(0, -c.cfg.RecentWindowMonths, 0)

	if last.Before(passiveCutoff) {
		months := wholeDays(last, now) / 30
		return model.Result{
			Status:                 model.StatusPassive,
			Label:                  "Passive",
			Description:            fmt.Sprintf("%d months since last invoice", months),
			InvoiceCount:           len(matched),
			LastInvoiceDate:        last,
			MonthsSinceLastInvoice: months,
		}
	}

	recent := 0
	for _, d := range dates {
		if !d.Before(recentCutoff) {
			recent++
		}
	}

	if recent >= c.cfg.FavoriteMinInvoices {
		return model.Result{
			Status:           model.StatusFavorite,
			Label:            "Favorite",
			Description:      fmt.Sprintf("%d invoices in the last year", recent),
			InvoiceCount:     len(matched),
			LastInvoiceDate:  last,
			InvoicesLastYear: recent,
		}
	}

	return model.Result{
		Status:           model.StatusActive,
		Label:            "Active",
		Description:      fmt.Sprintf("%d invoices in the last year", recent),
		InvoiceCount:     len(matched),
		LastInvoiceDate:  last,
		InvoicesLastYear: recent,
	}
}

// wholeDays returns the number of full days between from and to,
// truncated toward zero.
func wholeDays(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
