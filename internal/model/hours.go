package model

// HoursBand is a discretized daily caregiving-hours category
type HoursBand string

const (
	HoursBandUnder1  HoursBand = "<1h"
	HoursBand1To3    HoursBand = "1-3h"
	HoursBand4To8    HoursBand = "4-8h"
	HoursBand12To16  HoursBand = "12-16h"
	HoursBandFullDay HoursBand = "24h"
)

// HoursBandRange returns the low/high daily hours a band represents.
func HoursBandRange(b HoursBand) (low, high float64) {
	switch b {
	case HoursBandUnder1:
		return 0, 1
	case HoursBand1To3:
		return 1, 3
	case HoursBand4To8:
		return 4, 8
	case HoursBand12To16:
		return 12, 16
	case HoursBandFullDay:
		return 24, 24
	}
	return 0, 0
}

// HoursEstimate is the daily caregiving-hours requirement for in-home care.
// Only populated when the recommended or compared tier is in_home, or a
// comparison is explicitly requested.
type HoursEstimate struct {
	Band                HoursBand `json:"band" bson:"band"`
	HoursLow            float64   `json:"hours_low" bson:"hoursLow"`
	HoursHigh           float64   `json:"hours_high" bson:"hoursHigh"`
	ContributingFactors []string  `json:"contributing_factors" bson:"contributingFactors"`
}
