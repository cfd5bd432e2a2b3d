package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

// Appointment запись клиента к сотруднику на конкретный момент времени
type Appointment struct {
	ID          string
	Title       string    // Название услуги
	DateTime    time.Time // Момент начала, UTC
	Status      AppointmentStatus
	CustomerID  string
	EmployeeID  string
	Description *string
	CreatedAt   time.Time
}

// IsActive returns false only for cancelled appointments.
// Only active appointments occupy a slot.
func (a *Appointment) IsActive() bool {
	return a.Status != AppointmentCancelled
}

// Date calendar day of the appointment (UTC)
func (a *Appointment) Date() time.Time {
	return calendar.Day(a.DateTime)
}

// Slot time of day of the appointment (UTC)
func (a *Appointment) Slot() types.TimeString {
	_, slot := calendar.SplitInstant(a.DateTime)
	return slot
}

// ParseAppointmentStatus парсит статус без учета регистра
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case AppointmentPending, AppointmentConfirmed, AppointmentCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}

// AppointmentFilter фильтр списка записей. Все поля опциональны,
// но хотя бы одно должно быть задано на уровне сервиса.
type AppointmentFilter struct {
	EmployeeID *string
	CustomerID *string
	Date       *time.Time // Конкретный день
	StartDate  *time.Time // Начало периода включительно
	EndDate    *time.Time // Конец периода, не включая
}

// IsEmpty returns true if no criteria are set
func (f AppointmentFilter) IsEmpty() bool {
	return f.EmployeeID == nil && f.CustomerID == nil && f.Date == nil && f.StartDate == nil && f.EndDate == nil
}

// Matches проверяет запись на соответствие фильтру (используется in-memory хранилищем)
func (f AppointmentFilter) Matches(a *Appointment) bool {
	if f.EmployeeID != nil && a.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.CustomerID != nil && a.CustomerID != *f.CustomerID {
		return false
	}
	if f.Date != nil && !calendar.SameDay(a.DateTime, *f.Date) {
		return false
	}
	if f.StartDate != nil && a.DateTime.Before(calendar.Day(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && !a.DateTime.Before(calendar.Day(*f.EndDate)) {
		return false
	}
	return true
}
