package datastore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
)

// AvailabilityRepository записи доступности через HTTP хранилище
type AvailabilityRepository struct {
	client *Client
}

// NewAvailabilityRepository создает репозиторий поверх клиента
func NewAvailabilityRepository(client *Client) *AvailabilityRepository {
	return &AvailabilityRepository{client: client}
}

// Create создает запись. Хранилище присваивает ID.
func (r *AvailabilityRepository) Create(ctx context.Context, availability *domain.Availability) (*domain.Availability, error) {
	var created Availability
	err := r.client.do(ctx, http.MethodPost, "/availability", nil, fromDomainAvailability(availability), &created, nil)
	if err != nil {
		return nil, err
	}
	return created.ToDomain()
}

// GetByID получает запись по ID
func (r *AvailabilityRepository) GetByID(ctx context.Context, id string) (*domain.Availability, error) {
	var found Availability
	err := r.client.do(ctx, http.MethodGet, "/availability/"+url.PathEscape(id), nil, nil, &found, domain.ErrAvailabilityNotFound)
	if err != nil {
		return nil, err
	}
	return found.ToDomain()
}

// List получает записи по фильтру
func (r *AvailabilityRepository) List(ctx context.Context, filter domain.AvailabilityFilter) ([]*domain.Availability, error) {
	query := url.Values{}
	query.Set("date", calendar.FormatDate(filter.Date))
	if filter.EmployeeID != nil {
		query.Set("employeeId", *filter.EmployeeID)
	}
	if filter.Status != nil {
		query.Set("status", string(*filter.Status))
	}

	var records []Availability
	if err := r.client.do(ctx, http.MethodGet, "/availability", query, nil, &records, nil); err != nil {
		return nil, err
	}

	result := make([]*domain.Availability, 0, len(records))
	for _, rec := range records {
		a, err := rec.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamFailure, err)
		}
		result = append(result, a)
	}
	return result, nil
}

// UpdateStatus меняет статус записи и возвращает обновленную запись
func (r *AvailabilityRepository) UpdateStatus(ctx context.Context, id string, status domain.AvailabilityStatus) (*domain.Availability, error) {
	var updated Availability
	err := r.client.do(ctx, http.MethodPatch, "/availability/"+url.PathEscape(id), nil,
		statusPatch{Status: string(status)}, &updated, domain.ErrAvailabilityNotFound)
	if err != nil {
		return nil, err
	}
	return updated.ToDomain()
}

// Delete удаляет запись
func (r *AvailabilityRepository) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, "/availability/"+url.PathEscape(id), nil, nil, nil, domain.ErrAvailabilityNotFound)
}
