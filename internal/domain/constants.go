package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/calendar"

// Time format constants
const (
	TimeFormat = "15:04"             // HH:MM
	DateFormat = calendar.DateFormat // YYYY-MM-DD
)

// Default scheduling values
const (
	DefaultHorizonDays     = 60
	DefaultSlotStart       = "09:00"
	DefaultSlotEnd         = "17:00"
	DefaultSlotStepMinutes = 60
)

// Business validation constants
const (
	MaxHorizonDays       = 366
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MaxRosterWeekOffset  = 52
)
