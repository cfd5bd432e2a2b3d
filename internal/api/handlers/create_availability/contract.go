package create_availability

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability/models"
)

type AvailabilityService interface {
	Create(ctx context.Context, req *models.CreateAvailabilityRequest) (*domain.Availability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
