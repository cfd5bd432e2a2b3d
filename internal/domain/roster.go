package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// RosterEntry назначенная смена сотрудника в недельном расписании
type RosterEntry struct {
	AvailabilityID string
	EmployeeID     string
	EmployeeName   string
	StartTime      types.TimeString
	EndTime        types.TimeString
}

// DayRoster назначенные смены одного дня
type DayRoster struct {
	Date    time.Time
	Entries []RosterEntry
}

// WeekRoster недельное расписание с понедельника
type WeekRoster struct {
	WeekStart time.Time
	Days      []DayRoster
}
