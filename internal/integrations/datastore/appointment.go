package datastore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
)

// AppointmentRepository записи клиентов через HTTP хранилище
type AppointmentRepository struct {
	client *Client
}

// NewAppointmentRepository создает репозиторий поверх клиента
func NewAppointmentRepository(client *Client) *AppointmentRepository {
	return &AppointmentRepository{client: client}
}

// Create сохраняет запись клиента
func (r *AppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	var created Appointment
	err := r.client.do(ctx, http.MethodPost, "/appointments", nil, fromDomainAppointment(appointment), &created, nil)
	if err != nil {
		return nil, err
	}
	return created.ToDomain()
}

// List получает записи по фильтру
func (r *AppointmentRepository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	query := url.Values{}
	if filter.EmployeeID != nil {
		query.Set("employeeId", *filter.EmployeeID)
	}
	if filter.CustomerID != nil {
		query.Set("customerId", *filter.CustomerID)
	}
	if filter.Date != nil {
		query.Set("date", calendar.FormatDate(*filter.Date))
	}
	if filter.StartDate != nil {
		query.Set("from", calendar.Day(*filter.StartDate).Format(time.RFC3339))
	}
	if filter.EndDate != nil {
		query.Set("to", calendar.Day(*filter.EndDate).Format(time.RFC3339))
	}

	var records []Appointment
	if err := r.client.do(ctx, http.MethodGet, "/appointments", query, nil, &records, nil); err != nil {
		return nil, err
	}

	result := make([]*domain.Appointment, 0, len(records))
	for _, rec := range records {
		a, err := rec.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamFailure, err)
		}
		// Хранилище может трактовать границы периода иначе, поэтому фильтр применяется повторно
		if filter.Matches(a) {
			result = append(result, a)
		}
	}
	return result, nil
}
