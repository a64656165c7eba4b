package report

import (
	"sort"
	"time"

	"github.com/halcyonic/pulse/internal/lifecycle"
	"github.com/halcyonic/pulse/internal/model"
)

// Window sizes for the lead summary warning counts, in days relative to
// the passivity threshold.
const (
	recentlyPassiveWindowDays = 7
	riskOfPassiveWindowDays   = 5
)

// LeadSummary is the pipeline census of a lead collection. Leads without
// a usable activity timestamp are excluded from every figure.
type LeadSummary struct {
	TotalActiveLeads   int
	TotalPassiveLeads  int
	ActiveValue        float64
	PassiveValue       float64
	AverageActiveDays  int
	AveragePassiveDays int
	// RecentlyPassive counts leads that crossed the threshold within the
	// last 7 days.
	RecentlyPassive int
	// RiskOfPassive counts active leads within 5 days of the threshold.
	RiskOfPassive int
}

// PassiveLeads returns the leads classified passive at now, sorted by
// inactivity, most dormant first.
func (g *Generator) PassiveLeads(leads []model.Lead, now time.Time) []LeadStatus {
	out := make([]LeadStatus, 0)
	for _, lead := range leads {
		res, ok := lifecycle.ClassifyLead(lead, now, g.leadThresholdDays)
		if !ok || res.Status != model.StatusPassive {
			continue
		}
		out = append(out, LeadStatus{Lead: lead, Status: res})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Status.DaysSinceActivity > out[j].Status.DaysSinceActivity
	})
	return out
}

// Summary classifies every lead once and reduces the results into a
// LeadSummary.
func (g *Generator) Summary(leads []model.Lead, now time.Time) LeadSummary {
	var sum LeadSummary
	activeDays := 0
	passiveDays := 0

	for _, lead := range leads {
		res, ok := lifecycle.ClassifyLead(lead, now, g.leadThresholdDays)
		if !ok {
			continue
		}

		switch res.Status {
		case model.StatusPassive:
			sum.TotalPassiveLeads++
			sum.PassiveValue += lead.Value
			passiveDays += res.DaysSinceActivity
			if res.DaysSinceActivity < g.leadThresholdDays+recentlyPassiveWindowDays {
				sum.RecentlyPassive++
			}
		case model.StatusActive:
			sum.TotalActiveLeads++
			sum.ActiveValue += lead.Value
			activeDays += res.DaysSinceActivity
			if res.DaysSinceActivity >= g.leadThresholdDays-riskOfPassiveWindowDays {
				sum.RiskOfPassive++
			}
		}
	}

	if sum.TotalActiveLeads > 0 {
		sum.AverageActiveDays = activeDays / sum.TotalActiveLeads
	}
	if sum.TotalPassiveLeads > 0 {
		sum.AveragePassiveDays = passiveDays / sum.TotalPassiveLeads
	}
	return sum
}
