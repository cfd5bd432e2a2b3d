package models

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// CreateAvailabilityRequest запрос на создание окна доступности
type CreateAvailabilityRequest struct {
	EmployeeID string
	Date       string // YYYY-MM-DD
	StartTime  string // HH:MM
	EndTime    string // HH:MM
}

// ToDomain конвертирует запрос в доменную модель со статусом OPEN
func (r *CreateAvailabilityRequest) ToDomain() (*domain.Availability, error) {
	date, err := calendar.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	availability := &domain.Availability{
		EmployeeID: strings.TrimSpace(r.EmployeeID),
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Status:     domain.AvailabilityOpen,
	}
	if err := availability.Validate(); err != nil {
		return nil, err
	}
	return availability, nil
}

// ListAvailabilityRequest фильтр списка доступности
type ListAvailabilityRequest struct {
	Date       string  // Обязательный, YYYY-MM-DD
	EmployeeID *string // Опционально
	Status     *string // Опционально: OPEN, ASSIGNED, CLOSED
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *ListAvailabilityRequest) ToDomainFilter() (domain.AvailabilityFilter, error) {
	if r.Date == "" {
		return domain.AvailabilityFilter{}, fmt.Errorf("date is required")
	}
	date, err := calendar.ParseDate(r.Date)
	if err != nil {
		return domain.AvailabilityFilter{}, err
	}

	filter := domain.AvailabilityFilter{Date: date, EmployeeID: r.EmployeeID}
	if r.Status != nil {
		status, err := domain.ParseAvailabilityStatus(*r.Status)
		if err != nil {
			return domain.AvailabilityFilter{}, err
		}
		filter.Status = &status
	}
	return filter, nil
}

// AvailabilityResponse модель записи доступности для ответа
type AvailabilityResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Status     string `json:"status"`
}

// FromDomainAvailability конвертирует доменную модель в ответ
func FromDomainAvailability(a *domain.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       calendar.FormatDate(a.Date),
		StartTime:  a.StartTime.String(),
		EndTime:    a.EndTime.String(),
		Status:     string(a.Status),
	}
}

// FromDomainAvailabilityList конвертирует список
func FromDomainAvailabilityList(list []*domain.Availability) []*AvailabilityResponse {
	result := make([]*AvailabilityResponse, 0, len(list))
	for _, a := range list {
		result = append(result, FromDomainAvailability(a))
	}
	return result
}
