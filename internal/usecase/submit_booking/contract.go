package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/notification"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей клиентов
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// EmployeeDirectory интерфейс клиента UserService
type EmployeeDirectory interface {
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
}

// Resolver выбор свободного сотрудника
type Resolver interface {
	Resolve(date time.Time, slot types.TimeString, employees []*domain.Employee, appointments []*domain.Appointment) (*domain.Employee, error)
}

// Notifier отправка письма клиенту (http, smtp или amqp)
type Notifier interface {
	Send(ctx context.Context, msg *notification.Message) error
}

// MetricsRecorder бизнес-метрики
type MetricsRecorder interface {
	RecordBooking(outcome string)
	RecordNotification(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) RecordBooking(string)      {}
func (noopMetrics) RecordNotification(string) {}
