package get_day_roster

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/roster/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
)

const msgInvalidDate = "некорректная дата, ожидается YYYY-MM-DD"

type Handler struct {
	service RosterService
	logger  Logger
}

func NewHandler(service RosterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/roster/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := calendar.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("GET /roster/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	day, err := h.service.DayRoster(r.Context(), date)
	if err != nil {
		if handlers.RespondUpstreamError(w, err) {
			h.logger.Warn("GET /roster/{date} - Upstream error: %v", err)
			return
		}
		h.logger.Error("GET /roster/{date} - Failed to build day roster: date=%s, error=%v",
			calendar.FormatDate(date), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /roster/{date} - %d entries on %s", len(day.Entries), calendar.FormatDate(date))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainDayRoster(day))
}
