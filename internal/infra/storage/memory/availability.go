// Package memory хранилища в памяти процесса.
// Используются драйвером storage.driver = "memory" и как фейки в тестах.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// AvailabilityRepository хранилище записей доступности
type AvailabilityRepository struct {
	mu      sync.RWMutex
	records map[string]domain.Availability
}

// NewAvailabilityRepository создает пустое хранилище
func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{records: make(map[string]domain.Availability)}
}

// Create сохраняет запись. Если ID пуст, генерируется UUID.
func (r *AvailabilityRepository) Create(_ context.Context, availability *domain.Availability) (*domain.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := *availability
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Status == "" {
		record.Status = domain.AvailabilityOpen
	}
	r.records[record.ID] = record

	return &record, nil
}

// GetByID получает запись по ID
func (r *AvailabilityRepository) GetByID(_ context.Context, id string) (*domain.Availability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", domain.ErrAvailabilityNotFound, id)
	}
	return &record, nil
}

// List возвращает записи по фильтру, упорядоченные по времени начала и ID
func (r *AvailabilityRepository) List(_ context.Context, filter domain.AvailabilityFilter) ([]*domain.Availability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Availability, 0)
	for _, record := range r.records {
		if filter.Matches(&record) {
			copied := record
			result = append(result, &copied)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].StartTime != result[j].StartTime {
			return result[i].StartTime.IsBefore(result[j].StartTime)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// UpdateStatus обновляет статус записи
func (r *AvailabilityRepository) UpdateStatus(_ context.Context, id string, status domain.AvailabilityStatus) (*domain.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", domain.ErrAvailabilityNotFound, id)
	}
	record.Status = status
	r.records[id] = record

	return &record, nil
}

// Delete удаляет запись
func (r *AvailabilityRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return fmt.Errorf("%w: id=%s", domain.ErrAvailabilityNotFound, id)
	}
	delete(r.records, id)
	return nil
}
