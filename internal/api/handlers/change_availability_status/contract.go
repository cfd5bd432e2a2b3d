package change_availability_status

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type AvailabilityService interface {
	ChangeStatus(ctx context.Context, id string, target domain.AvailabilityStatus) (*domain.Availability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
