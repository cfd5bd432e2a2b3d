package get_roster

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/roster"
	"github.com/m04kA/SMC-ScheduleService/internal/service/roster/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
)

const (
	msgInvalidWeek   = "некорректный параметр week, ожидается YYYY-MM-DD"
	msgInvalidOffset = "некорректный сдвиг недели"
)

type Handler struct {
	service RosterService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service RosterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/roster?week=2024-06-12&offset=-1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	anchor := h.now().UTC()
	if week := q.Get("week"); week != "" {
		parsed, err := calendar.ParseDate(week)
		if err != nil {
			h.logger.Warn("GET /roster - Invalid week: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeek)
			return
		}
		anchor = parsed
	}

	offset := 0
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /roster - Invalid offset: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOffset)
			return
		}
		offset = n
	}

	week, err := h.service.WeekRoster(r.Context(), anchor, offset)
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrInvalidInput):
			h.logger.Warn("GET /roster - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOffset)

		default:
			if handlers.RespondUpstreamError(w, err) {
				h.logger.Warn("GET /roster - Upstream error: %v", err)
				return
			}
			h.logger.Error("GET /roster - Failed to build roster: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /roster - Week starting %s", calendar.FormatDate(week.WeekStart))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainWeekRoster(week))
}
