package models

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
)

// RosterEntryResponse назначенная смена
type RosterEntryResponse struct {
	AvailabilityID string `json:"availabilityId"`
	EmployeeID     string `json:"employeeId"`
	EmployeeName   string `json:"employeeName"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
}

// DayRosterResponse смены одного дня
type DayRosterResponse struct {
	Date    string                 `json:"date"`
	Weekday string                 `json:"weekday"`
	Entries []*RosterEntryResponse `json:"entries"`
}

// WeekRosterResponse недельное расписание
type WeekRosterResponse struct {
	WeekStart string               `json:"weekStart"`
	WeekEnd   string               `json:"weekEnd"`
	Days      []*DayRosterResponse `json:"days"`
}

// FromDomainDayRoster конвертирует день расписания
func FromDomainDayRoster(d *domain.DayRoster) *DayRosterResponse {
	entries := make([]*RosterEntryResponse, 0, len(d.Entries))
	for _, e := range d.Entries {
		entries = append(entries, &RosterEntryResponse{
			AvailabilityID: e.AvailabilityID,
			EmployeeID:     e.EmployeeID,
			EmployeeName:   e.EmployeeName,
			StartTime:      e.StartTime.String(),
			EndTime:        e.EndTime.String(),
		})
	}
	return &DayRosterResponse{
		Date:    calendar.FormatDate(d.Date),
		Weekday: d.Date.Weekday().String(),
		Entries: entries,
	}
}

// FromDomainWeekRoster конвертирует недельное расписание
func FromDomainWeekRoster(w *domain.WeekRoster) *WeekRosterResponse {
	days := make([]*DayRosterResponse, 0, len(w.Days))
	for i := range w.Days {
		days = append(days, FromDomainDayRoster(&w.Days[i]))
	}
	return &WeekRosterResponse{
		WeekStart: calendar.FormatDate(w.WeekStart),
		WeekEnd:   calendar.FormatDate(w.WeekStart.AddDate(0, 0, calendar.DaysInWeek-1)),
		Days:      days,
	}
}
