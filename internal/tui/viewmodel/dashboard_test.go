package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halcyonic/pulse/internal/report"
)

func TestDashboardView_Percentages(t *testing.T) {
	view := DashboardView{
		Stats: report.Statistics{Total: 8, Active: 3, Favorite: 2, Passive: 2, New: 1},
	}

	assert.InDelta(t, 25.0, view.PassivePercentage(), 0.001)
	assert.InDelta(t, 25.0, view.FavoritePercentage(), 0.001)
}

func TestDashboardView_EmptyBase(t *testing.T) {
	var view DashboardView

	assert.Zero(t, view.PassivePercentage())
	assert.Zero(t, view.FavoritePercentage())
	assert.Zero(t, view.TotalLeads())
	assert.Zero(t, view.PipelineValue())
}

func TestDashboardView_Pipeline(t *testing.T) {
	view := DashboardView{
		LeadSummary: report.LeadSummary{
			TotalActiveLeads:  3,
			TotalPassiveLeads: 2,
			ActiveValue:       1500,
			PassiveValue:      500,
		},
	}

	assert.Equal(t, 5, view.TotalLeads())
	assert.InDelta(t, 2000, view.PipelineValue(), 0.001)
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "1 month", FormatDormancy(1))
	assert.Equal(t, "7 months", FormatDormancy(7))
	assert.Equal(t, "1 day", FormatDays(1))
	assert.Equal(t, "19 days", FormatDays(19))
}
