package domain

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// DayAvailability bookable slots of one calendar day
type DayAvailability struct {
	Date           time.Time
	AvailableSlots []types.TimeString
	FullyBooked    bool
}

// AvailabilityView derived availability keyed by date (YYYY-MM-DD).
// Recomputed on every request and never stored.
type AvailabilityView map[string]DayAvailability

// Dates returns keys in chronological order
func (v AvailabilityView) Dates() []string {
	dates := make([]string, 0, len(v))
	for d := range v {
		dates = append(dates, d)
	}
	// YYYY-MM-DD сортируется лексикографически
	sort.Strings(dates)
	return dates
}

// Days returns day entries in chronological order
func (v AvailabilityView) Days() []DayAvailability {
	days := make([]DayAvailability, 0, len(v))
	for _, d := range v.Dates() {
		days = append(days, v[d])
	}
	return days
}

// FullyBookedDates returns fully booked dates in chronological order
func (v AvailabilityView) FullyBookedDates() []string {
	result := make([]string, 0)
	for _, d := range v.Dates() {
		if v[d].FullyBooked {
			result = append(result, d)
		}
	}
	return result
}

// Day returns availability for the given date
func (v AvailabilityView) Day(date time.Time) (DayAvailability, bool) {
	day, ok := v[calendar.FormatDate(date)]
	return day, ok
}
