package availability

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Repository интерфейс хранилища записей доступности
type Repository interface {
	Create(ctx context.Context, availability *domain.Availability) (*domain.Availability, error)
	GetByID(ctx context.Context, id string) (*domain.Availability, error)
	List(ctx context.Context, filter domain.AvailabilityFilter) ([]*domain.Availability, error)
	UpdateStatus(ctx context.Context, id string, status domain.AvailabilityStatus) (*domain.Availability, error)
	Delete(ctx context.Context, id string) error
}

// EmployeeDirectory справочник сотрудников (UserService)
type EmployeeDirectory interface {
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
