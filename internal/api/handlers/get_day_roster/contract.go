package get_day_roster

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type RosterService interface {
	DayRoster(ctx context.Context, date time.Time) (*domain.DayRoster, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
