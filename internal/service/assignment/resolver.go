package assignment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Resolver выбирает свободного сотрудника, когда клиент не указал его сам
type Resolver struct {
	random RandomSource
	logger Logger
}

// NewResolver создает резолвер. random == nil означает GlobalRandomSource.
func NewResolver(random RandomSource, logger Logger) *Resolver {
	if random == nil {
		random = GlobalRandomSource{}
	}
	return &Resolver{
		random: random,
		logger: logger,
	}
}

// Resolve выбирает сотрудника равновероятно среди свободных на дату и слот.
// Случайный выбор вместо первого свободного распределяет нагрузку между сотрудниками.
func (r *Resolver) Resolve(
	date time.Time,
	slot types.TimeString,
	employees []*domain.Employee,
	appointments []*domain.Appointment,
) (*domain.Employee, error) {
	free := slots.FreeEmployees(employees, appointments, date, slot)
	if len(free) == 0 {
		r.logger.Warn("Resolve: no free employee on %s at %s (employees=%d)",
			calendar.FormatDate(date), slot, len(employees))
		return nil, fmt.Errorf("%w: date=%s, slot=%s", ErrNoAvailability, calendar.FormatDate(date), slot)
	}

	chosen := free[r.random.IntN(len(free))]
	r.logger.Info("Resolve: picked employee=%s on %s at %s among %d free",
		chosen.ID, calendar.FormatDate(date), slot, len(free))
	return chosen, nil
}
