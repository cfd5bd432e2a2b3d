package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
)

// UseCase use case расчета доступных слотов на горизонт
type UseCase struct {
	appointments AppointmentRepository
	directory    EmployeeDirectory
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointments AppointmentRepository,
	directory EmployeeDirectory,
	settings Settings,
	logger Logger,
) *UseCase {
	if settings.HorizonDays <= 0 {
		settings.HorizonDays = domain.DefaultHorizonDays
	}
	if settings.MaxHorizonDays <= 0 {
		settings.MaxHorizonDays = domain.MaxHorizonDays
	}
	return &UseCase{
		appointments: appointments,
		directory:    directory,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute строит представление доступности. Результат не кэшируется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	days := req.HorizonDays
	if days == 0 {
		days = uc.settings.HorizonDays
	}
	if days < 0 || days > uc.settings.MaxHorizonDays {
		uc.logger.Warn("GetAvailableSlots: invalid horizon %d", days)
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, uc.settings.MaxHorizonDays)
	}

	from := calendar.Day(uc.timeProvider.Now())
	if req.From != nil {
		from = calendar.Day(*req.From)
	}
	to := from.AddDate(0, 0, days)

	uc.logger.Info("GetAvailableSlots: from=%s, days=%d", calendar.FormatDate(from), days)

	// 2. Сотрудники
	employees, err := uc.directory.ListEmployees(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list employees: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	// 3. Записи за горизонт [from, to)
	appointments, err := uc.appointments.List(ctx, domain.AppointmentFilter{
		StartDate: &from,
		EndDate:   &to,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	// 4. Расчет
	view := slots.Compute(employees, appointments, from, days, uc.settings.Slots)

	uc.logger.Info("GetAvailableSlots: %d days computed, %d fully booked, employees=%d, appointments=%d",
		len(view), len(view.FullyBookedDates()), len(employees), len(appointments))

	return &Response{
		From:        from,
		HorizonDays: days,
		Slots:       uc.settings.Slots,
		View:        view,
	}, nil
}
