package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// AvailabilityStatus represents the lifecycle state of an availability record
type AvailabilityStatus string

const (
	AvailabilityOpen     AvailabilityStatus = "OPEN"
	AvailabilityAssigned AvailabilityStatus = "ASSIGNED"
	AvailabilityClosed   AvailabilityStatus = "CLOSED"
)

// Availability рабочее окно сотрудника на конкретную дату
type Availability struct {
	ID         string
	EmployeeID string
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Status     AvailabilityStatus
}

// transitions допустимые переходы статусов. CLOSED терминальный.
var transitions = map[AvailabilityStatus][]AvailabilityStatus{
	AvailabilityOpen:     {AvailabilityAssigned, AvailabilityClosed},
	AvailabilityAssigned: {AvailabilityOpen, AvailabilityClosed},
	AvailabilityClosed:   {},
}

// CanTransitionTo returns true if the record may move to target
func (a *Availability) CanTransitionTo(target AvailabilityStatus) bool {
	for _, allowed := range transitions[a.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Assign OPEN -> ASSIGNED
func (a *Availability) Assign() error {
	return a.moveTo(AvailabilityOpen, AvailabilityAssigned)
}

// Unassign ASSIGNED -> OPEN. Время начала и окончания не меняется.
func (a *Availability) Unassign() error {
	return a.moveTo(AvailabilityAssigned, AvailabilityOpen)
}

// Close административное закрытие из OPEN или ASSIGNED
func (a *Availability) Close() error {
	if !a.CanTransitionTo(AvailabilityClosed) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, AvailabilityClosed)
	}
	a.Status = AvailabilityClosed
	return nil
}

// CanBeDeleted returns true for OPEN and ASSIGNED records
func (a *Availability) CanBeDeleted() bool {
	return a.Status == AvailabilityOpen || a.Status == AvailabilityAssigned
}

func (a *Availability) moveTo(from, to AvailabilityStatus) error {
	if a.Status != from {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, to)
	}
	a.Status = to
	return nil
}

// Validate проверяет обязательные поля и окно времени
func (a *Availability) Validate() error {
	if strings.TrimSpace(a.EmployeeID) == "" {
		return fmt.Errorf("employeeId is required")
	}
	if a.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if err := a.StartTime.Validate(); err != nil {
		return fmt.Errorf("invalid startTime: %v", err)
	}
	if err := a.EndTime.Validate(); err != nil {
		return fmt.Errorf("invalid endTime: %v", err)
	}
	if !a.EndTime.IsAfter(a.StartTime) {
		return fmt.Errorf("endTime must be after startTime")
	}
	return nil
}

// ParseAvailabilityStatus парсит статус без учета регистра
func ParseAvailabilityStatus(s string) (AvailabilityStatus, error) {
	status := AvailabilityStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case AvailabilityOpen, AvailabilityAssigned, AvailabilityClosed:
		return status, nil
	default:
		return "", fmt.Errorf("unknown availability status %q", s)
	}
}

// AvailabilityFilter фильтр списка доступности. Date обязательна.
type AvailabilityFilter struct {
	Date       time.Time
	EmployeeID *string
	Status     *AvailabilityStatus
}

// Matches проверяет запись на соответствие фильтру
func (f AvailabilityFilter) Matches(a *Availability) bool {
	if !calendar.SameDay(a.Date, f.Date) {
		return false
	}
	if f.EmployeeID != nil && a.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.Status != nil && a.Status != *f.Status {
		return false
	}
	return true
}
