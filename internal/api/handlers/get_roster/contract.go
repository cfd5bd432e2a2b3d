package get_roster

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type RosterService interface {
	WeekRoster(ctx context.Context, anchor time.Time, offsetWeeks int) (*domain.WeekRoster, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
