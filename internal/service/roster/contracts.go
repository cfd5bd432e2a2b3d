package roster

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// AvailabilityRepository чтение записей доступности
type AvailabilityRepository interface {
	List(ctx context.Context, filter domain.AvailabilityFilter) ([]*domain.Availability, error)
}

// AvailabilityStateMachine переходы статусов доступности
type AvailabilityStateMachine interface {
	Assign(ctx context.Context, id string) (*domain.Availability, error)
	Unassign(ctx context.Context, id string) (*domain.Availability, error)
}

// EmployeeDirectory справочник сотрудников для отображения имен
type EmployeeDirectory interface {
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)
}

// MetricsRecorder учет операций с расписанием
type MetricsRecorder interface {
	RecordRosterOperation(operation, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
