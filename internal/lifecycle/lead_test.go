package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonic/pulse/internal/model"
)

func TestClassifyLead(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		lead          model.Lead
		thresholdDays int
		wantStatus    model.Status
		wantDays      int
		wantTransfer  bool
		wantUntil     int
	}{
		{
			name:          "one day before the threshold stays active",
			lead:          model.Lead{ID: "l1", LastActivity: daysAgo(now, 19)},
			thresholdDays: 20,
			wantStatus:    model.StatusActive,
			wantDays:      19,
			wantUntil:     1,
		},
		{
			name:          "exactly at the threshold turns passive",
			lead:          model.Lead{ID: "l1", LastActivity: daysAgo(now, 20)},
			thresholdDays: 20,
			wantStatus:    model.StatusPassive,
			wantDays:      20,
			wantTransfer:  true,
		},
		{
			name:          "well past the threshold",
			lead:          model.Lead{ID: "l1", LastActivity: daysAgo(now, 41)},
			thresholdDays: 20,
			wantStatus:    model.StatusPassive,
			wantDays:      41,
			wantTransfer:  true,
		},
		{
			name:          "fresh activity",
			lead:          model.Lead{ID: "l1", LastActivity: daysAgo(now, 2)},
			thresholdDays: 20,
			wantStatus:    model.StatusActive,
			wantDays:      2,
			wantUntil:     18,
		},
		{
			name:          "partial day truncates down",
			lead:          model.Lead{ID: "l1", LastActivity: now.Add(-19*24*time.Hour - 23*time.Hour)},
			thresholdDays: 20,
			wantStatus:    model.StatusActive,
			wantDays:      19,
			wantUntil:     1,
		},
		{
			name:          "zero threshold falls back to the default",
			lead:          model.Lead{ID: "l1", LastActivity: daysAgo(now, 25)},
			thresholdDays: 0,
			wantStatus:    model.StatusPassive,
			wantDays:      25,
			wantTransfer:  true,
		},
		{
			name:          "custom threshold",
			lead:          model.Lead{ID: "l1", LastActivity: daysAgo(now, 25)},
			thresholdDays: 30,
			wantStatus:    model.StatusActive,
			wantDays:      25,
			wantUntil:     5,
		},
		{
			name:          "creation time serves as activity fallback",
			lead:          model.Lead{ID: "l1", CreatedAt: daysAgo(now, 22)},
			thresholdDays: 20,
			wantStatus:    model.StatusPassive,
			wantDays:      22,
			wantTransfer:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyLead(tt.lead, now, tt.thresholdDays)
			require.True(t, ok)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantDays, got.DaysSinceActivity)
			assert.Equal(t, tt.wantTransfer, got.ShouldTransfer)
			assert.Equal(t, tt.wantUntil, got.DaysUntilPassive)
		})
	}
}

func TestClassifyLead_NoUsableTimestamp(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, ok := ClassifyLead(model.Lead{ID: "l1"}, now, 20)
	assert.False(t, ok)
}

func TestClassifyLead_Deterministic(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	lead := model.Lead{ID: "l1", LastActivity: daysAgo(now, 15), Value: 1200}

	first, ok1 := ClassifyLead(lead, now, 20)
	second, ok2 := ClassifyLead(lead, now, 20)

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)
}
