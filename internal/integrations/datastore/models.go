package datastore

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Availability запись доступности в формате хранилища
type Availability struct {
	ID         string           `json:"id,omitempty"`
	EmployeeID string           `json:"employeeId"`
	Date       string           `json:"date"`
	StartTime  types.TimeString `json:"startTime"`
	EndTime    types.TimeString `json:"endTime"`
	Status     string           `json:"status,omitempty"`
}

func fromDomainAvailability(a *domain.Availability) Availability {
	return Availability{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       calendar.FormatDate(a.Date),
		StartTime:  a.StartTime,
		EndTime:    a.EndTime,
		Status:     string(a.Status),
	}
}

// ToDomain конвертирует в доменную модель
func (a Availability) ToDomain() (*domain.Availability, error) {
	date, err := calendar.ParseDate(a.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: availability %s: %v", ErrInvalidResponse, a.ID, err)
	}
	status, err := domain.ParseAvailabilityStatus(a.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: availability %s: %v", ErrInvalidResponse, a.ID, err)
	}

	return &domain.Availability{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       date,
		StartTime:  a.StartTime,
		EndTime:    a.EndTime,
		Status:     status,
	}, nil
}

// Appointment запись клиента в формате хранилища
type Appointment struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	DateTime    time.Time  `json:"dateTime"`
	Status      string     `json:"status"`
	CustomerID  string     `json:"customerId"`
	EmployeeID  string     `json:"employeeId"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

func fromDomainAppointment(a *domain.Appointment) Appointment {
	dto := Appointment{
		ID:          a.ID,
		Title:       a.Title,
		DateTime:    a.DateTime.UTC(),
		Status:      string(a.Status),
		CustomerID:  a.CustomerID,
		EmployeeID:  a.EmployeeID,
		Description: a.Description,
	}
	if !a.CreatedAt.IsZero() {
		createdAt := a.CreatedAt.UTC()
		dto.CreatedAt = &createdAt
	}
	return dto
}

// ToDomain конвертирует в доменную модель
func (a Appointment) ToDomain() (*domain.Appointment, error) {
	status, err := domain.ParseAppointmentStatus(a.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: appointment %s: %v", ErrInvalidResponse, a.ID, err)
	}

	result := &domain.Appointment{
		ID:          a.ID,
		Title:       a.Title,
		DateTime:    a.DateTime.UTC(),
		Status:      status,
		CustomerID:  a.CustomerID,
		EmployeeID:  a.EmployeeID,
		Description: a.Description,
	}
	if a.CreatedAt != nil {
		result.CreatedAt = a.CreatedAt.UTC()
	}
	return result, nil
}

type statusPatch struct {
	Status string `json:"status"`
}

// ErrorResponse модель ошибки хранилища
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e ErrorResponse) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
