package remove_staff

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type RosterService interface {
	RemoveAssignment(ctx context.Context, date time.Time, employeeID string) (*domain.DayRoster, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
