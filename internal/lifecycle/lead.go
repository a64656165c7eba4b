package lifecycle

import (
	"time"

	"github.com/halcyonic/pulse/internal/model"
)

// DefaultLeadThresholdDays is the number of days without recorded
// activity after which a lead is considered passive.
const DefaultLeadThresholdDays = 20

// ClassifyLead determines whether a lead has crossed the inactivity
// threshold at the instant now. thresholdDays values of zero or below
// fall back to DefaultLeadThresholdDays.
//
// The second return is false when the lead carries no usable activity
// timestamp; such leads have no defined passivity and are excluded from
// aggregate calculations.
func ClassifyLead(lead model.Lead, now time.Time, thresholdDays int) (model.LeadResult, bool) {
	if thresholdDays <= 0 {
		thresholdDays = DefaultLeadThresholdDays
	}

	activity, ok := lead.ActivityAt()
	if !ok {
		return model.LeadResult{}, false
	}

	days := wholeDays(activity, now)
	if days >= thresholdDays {
		return model.LeadResult{
			Status:            model.StatusPassive,
			DaysSinceActivity: days,
			ShouldTransfer:    true,
		}, true
	}

	return model.LeadResult{
		Status:            model.StatusActive,
		DaysSinceActivity: days,
		DaysUntilPassive:  thresholdDays - days,
	}, true
}
