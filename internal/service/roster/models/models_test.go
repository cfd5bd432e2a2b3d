package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
)

func TestFromDomainWeekRoster(t *testing.T) {
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	week := &domain.WeekRoster{WeekStart: monday}
	for _, day := range calendar.WeekDays(monday) {
		week.Days = append(week.Days, domain.DayRoster{Date: day})
	}
	week.Days[0].Entries = []domain.RosterEntry{
		{AvailabilityID: "av", EmployeeID: "A", EmployeeName: "Анна", StartTime: "09:00", EndTime: "13:00"},
	}

	resp := FromDomainWeekRoster(week)
	assert.Equal(t, "2024-06-10", resp.WeekStart)
	assert.Equal(t, "2024-06-16", resp.WeekEnd)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, "Monday", resp.Days[0].Weekday)
	require.Len(t, resp.Days[0].Entries, 1)
	assert.Equal(t, "13:00", resp.Days[0].Entries[0].EndTime)
	assert.NotNil(t, resp.Days[1].Entries)
}
