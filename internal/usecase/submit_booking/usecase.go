package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/assignment"
	"github.com/m04kA/SMC-ScheduleService/internal/service/slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// Исходы записи для метрик
const (
	outcomeCreated        = "created"
	outcomeInvalid        = "invalid"
	outcomeConflict       = "conflict"
	outcomeNoAvailability = "no_availability"
	outcomeError          = "error"

	notificationSent    = "sent"
	notificationFailed  = "failed"
	notificationSkipped = "skipped"
)

// UseCase use case записи клиента
type UseCase struct {
	appointments AppointmentRepository
	directory    EmployeeDirectory
	resolver     Resolver
	notifier     Notifier
	metrics      MetricsRecorder
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. notifier и metrics могут быть nil.
func NewUseCase(
	appointments AppointmentRepository,
	directory EmployeeDirectory,
	resolver Resolver,
	notifier Notifier,
	metrics MetricsRecorder,
	settings Settings,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		appointments: appointments,
		directory:    directory,
		resolver:     resolver,
		notifier:     notifier,
		metrics:      metrics,
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

// Execute выполняет запись клиента.
// Проверка свободного сотрудника и создание записи не атомарны: защиту от гонки дает хранилище.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: customer=%s, date=%s, slot=%s, employee=%s",
		req.CustomerID, calendar.FormatDate(req.Date), req.Slot, ptr.Value(req.EmployeeID))

	// 1. Валидация входных данных, до любых обращений к внешним сервисам
	if err := validateRequest(req, uc.settings); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		uc.metrics.RecordBooking(outcomeInvalid)
		return nil, err
	}

	date := calendar.Day(req.Date)
	instant, err := calendar.CombineDateAndSlot(date, req.Slot)
	if err != nil {
		uc.metrics.RecordBooking(outcomeInvalid)
		return nil, fmt.Errorf("%w: %w: %v", ErrInvalidInput, ErrInvalidSlot, err)
	}

	now := uc.timeProvider.Now().UTC()
	if err := validateDate(date, instant, now, uc.settings.HorizonDays); err != nil {
		uc.logger.Warn("SubmitBooking: date validation failed: %v", err)
		uc.metrics.RecordBooking(outcomeInvalid)
		return nil, err
	}

	// 2. Сотрудники и записи на этот день
	employees, err := uc.directory.ListEmployees(ctx)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to list employees: %v", err)
		uc.metrics.RecordBooking(outcomeError)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	dayAppointments, err := uc.appointments.List(ctx, domain.AppointmentFilter{Date: &date})
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to list appointments on %s: %v", calendar.FormatDate(date), err)
		uc.metrics.RecordBooking(outcomeError)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	// 3. Выбор сотрудника
	employee, autoAssigned, err := uc.chooseEmployee(req, date, instant, employees, dayAppointments)
	if err != nil {
		return nil, err
	}

	// 4. Создание записи
	appointment := &domain.Appointment{
		Title:       req.Title,
		DateTime:    instant,
		Status:      domain.AppointmentPending,
		CustomerID:  req.CustomerID,
		EmployeeID:  employee.ID,
		Description: req.Description,
		CreatedAt:   now,
	}

	created, err := uc.appointments.Create(ctx, appointment)
	if err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			uc.logger.Warn("SubmitBooking: slot taken concurrently, employee=%s, at=%s", employee.ID, instant)
			uc.metrics.RecordBooking(outcomeConflict)
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		uc.logger.Error("SubmitBooking: failed to create appointment: %v", err)
		uc.metrics.RecordBooking(outcomeError)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	uc.metrics.RecordBooking(outcomeCreated)
	uc.logger.Info("SubmitBooking: appointment id=%s created, employee=%s, auto=%t", created.ID, employee.ID, autoAssigned)

	resp := &Response{
		Appointment:  created,
		EmployeeName: employee.Name,
		AutoAssigned: autoAssigned,
	}

	// 5. Уведомление клиента
	if uc.notifier == nil {
		uc.metrics.RecordNotification(notificationSkipped)
		return resp, nil
	}

	if err := uc.notify(ctx, created, employee); err != nil {
		uc.logger.Error("SubmitBooking: appointment id=%s created, notification failed: %v", created.ID, err)
		uc.metrics.RecordNotification(notificationFailed)
		resp.NotificationFailed = true
		resp.NotificationError = err.Error()
		return resp, nil
	}

	uc.metrics.RecordNotification(notificationSent)
	return resp, nil
}

// chooseEmployee возвращает указанного сотрудника или выбирает свободного
func (uc *UseCase) chooseEmployee(
	req *Request,
	date, instant time.Time,
	employees []*domain.Employee,
	appointments []*domain.Appointment,
) (*domain.Employee, bool, error) {
	if req.EmployeeID == nil {
		employee, err := uc.resolver.Resolve(date, req.Slot, employees, appointments)
		if err != nil {
			if errors.Is(err, assignment.ErrNoAvailability) {
				uc.logger.Warn("SubmitBooking: no free employee on %s at %s", calendar.FormatDate(date), req.Slot)
				uc.metrics.RecordBooking(outcomeNoAvailability)
				return nil, false, err
			}
			uc.metrics.RecordBooking(outcomeError)
			return nil, false, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		return employee, true, nil
	}

	employee := findEmployee(employees, *req.EmployeeID)
	if employee == nil {
		uc.logger.Warn("SubmitBooking: employee id=%s not found", *req.EmployeeID)
		uc.metrics.RecordBooking(outcomeInvalid)
		return nil, false, fmt.Errorf("%w: id=%s", ErrEmployeeNotFound, *req.EmployeeID)
	}

	if slots.HasConflict(appointments, employee.ID, instant) {
		uc.logger.Warn("SubmitBooking: employee id=%s already booked at %s", employee.ID, instant)
		uc.metrics.RecordBooking(outcomeConflict)
		return nil, false, fmt.Errorf("%w: employee=%s, date=%s, slot=%s",
			ErrConflict, employee.ID, calendar.FormatDate(date), req.Slot)
	}

	return employee, false, nil
}

func findEmployee(employees []*domain.Employee, id string) *domain.Employee {
	for _, e := range employees {
		if e.ID == id {
			return e
		}
	}
	return nil
}
