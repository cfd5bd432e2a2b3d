package get_availability

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type AvailabilityService interface {
	Get(ctx context.Context, id string) (*domain.Availability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
