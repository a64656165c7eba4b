// Package viewmodel holds pure view data for the dashboard, kept free of
// bubbletea so it can be computed and tested in isolation.
package viewmodel

import (
	"fmt"
	"time"

	"github.com/halcyonic/pulse/internal/report"
)

// DashboardView is one fully computed classification pass, ready to
// render. All figures share the single Now the pass was run with.
type DashboardView struct {
	Now              time.Time
	Stats            report.Statistics
	LeadSummary      report.LeadSummary
	PassiveCustomers []report.CustomerStatus
	PassiveLeads     []report.LeadStatus
}

// PassivePercentage returns the share of passive customers, 0-100.
func (v DashboardView) PassivePercentage() float64 {
	if v.Stats.Total == 0 {
		return 0
	}
	return float64(v.Stats.Passive) / float64(v.Stats.Total) * 100
}

// FavoritePercentage returns the share of favorite customers, 0-100.
func (v DashboardView) FavoritePercentage() float64 {
	if v.Stats.Total == 0 {
		return 0
	}
	return float64(v.Stats.Favorite) / float64(v.Stats.Total) * 100
}

// TotalLeads returns the number of leads with a defined passivity state.
func (v DashboardView) TotalLeads() int {
	return v.LeadSummary.TotalActiveLeads + v.LeadSummary.TotalPassiveLeads
}

// PipelineValue returns the combined value of active and passive leads.
func (v DashboardView) PipelineValue() float64 {
	return v.LeadSummary.ActiveValue + v.LeadSummary.PassiveValue
}

// FormatDormancy renders a customer dormancy figure for display.
func FormatDormancy(months int) string {
	if months == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", months)
}

// FormatDays renders a day count for display.
func FormatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
