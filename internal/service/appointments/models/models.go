package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
)

// ListAppointmentsRequest фильтр списка записей. Нужен хотя бы один критерий.
type ListAppointmentsRequest struct {
	EmployeeID *string
	CustomerID *string
	Date       *string // YYYY-MM-DD
	Status     *string // PENDING, CONFIRMED, CANCELLED
}

// ToDomainFilter конвертирует запрос в доменный фильтр и статус
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentFilter, *domain.AppointmentStatus, error) {
	filter := domain.AppointmentFilter{
		EmployeeID: trimmed(r.EmployeeID),
		CustomerID: trimmed(r.CustomerID),
	}

	if r.Date != nil && *r.Date != "" {
		date, err := calendar.ParseDate(*r.Date)
		if err != nil {
			return domain.AppointmentFilter{}, nil, err
		}
		filter.Date = &date
	}

	if filter.IsEmpty() {
		return domain.AppointmentFilter{}, nil, fmt.Errorf("at least one of employeeId, customerId, date is required")
	}

	var status *domain.AppointmentStatus
	if r.Status != nil && *r.Status != "" {
		parsed, err := domain.ParseAppointmentStatus(*r.Status)
		if err != nil {
			return domain.AppointmentFilter{}, nil, err
		}
		status = &parsed
	}

	return filter, status, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// AppointmentResponse модель записи клиента для ответа
type AppointmentResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	DateTime    time.Time `json:"dateTime"`
	Date        string    `json:"date"`
	Slot        string    `json:"slot"`
	Status      string    `json:"status"`
	CustomerID  string    `json:"customerId"`
	EmployeeID  string    `json:"employeeId"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromDomainAppointment конвертирует доменную модель в ответ
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          a.ID,
		Title:       a.Title,
		DateTime:    a.DateTime.UTC(),
		Date:        calendar.FormatDate(a.DateTime),
		Slot:        a.Slot().String(),
		Status:      string(a.Status),
		CustomerID:  a.CustomerID,
		EmployeeID:  a.EmployeeID,
		Description: a.Description,
		CreatedAt:   a.CreatedAt.UTC(),
	}
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointmentList конвертирует список
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, 0, len(list))
	for _, a := range list {
		result = append(result, FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: result, Total: len(result)}
}
