package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
)

// AppointmentRepository хранилище записей клиентов
type AppointmentRepository struct {
	mu      sync.RWMutex
	records []domain.Appointment
}

// NewAppointmentRepository создает хранилище с начальными записями (для тестов и demo)
func NewAppointmentRepository(seed ...*domain.Appointment) *AppointmentRepository {
	r := &AppointmentRepository{records: make([]domain.Appointment, 0, len(seed))}
	for _, a := range seed {
		r.records = append(r.records, *a)
	}
	return r
}

// Create сохраняет запись. Если ID пуст, генерируется UUID.
// Вторая активная запись на того же сотрудника, дату и слот HH:MM отклоняется с domain.ErrSlotTaken.
func (r *AppointmentRepository) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if appointment.IsActive() {
		day, slot := calendar.SplitInstant(appointment.DateTime)
		for i := range r.records {
			existing := &r.records[i]
			if !existing.IsActive() || existing.EmployeeID != appointment.EmployeeID {
				continue
			}
			if calendar.SameDay(existing.DateTime, day) && existing.Slot() == slot {
				return nil, fmt.Errorf("%w: employee=%s, at=%s", domain.ErrSlotTaken, appointment.EmployeeID, appointment.DateTime.Format(time.RFC3339))
			}
		}
	}

	record := *appointment
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	r.records = append(r.records, record)

	return &record, nil
}

// List возвращает записи по фильтру в хронологическом порядке
func (r *AppointmentRepository) List(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Appointment, 0)
	for i := range r.records {
		if filter.Matches(&r.records[i]) {
			copied := r.records[i]
			result = append(result, &copied)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DateTime.Before(result[j].DateTime)
	})
	return result, nil
}
