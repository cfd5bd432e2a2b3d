package add_staff

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability"
	"github.com/m04kA/SMC-ScheduleService/internal/service/roster"
	"github.com/m04kA/SMC-ScheduleService/internal/service/roster/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
)

const (
	msgInvalidDate        = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmployeeRequired   = "не указан сотрудник"
	msgNoOpenSlot         = "у сотрудника нет свободного окна доступности на эту дату"
	msgAlreadyChanged     = "окно доступности уже изменено, повторите запрос"
)

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

// Handle POST /api/v1/roster/{date}/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := calendar.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("POST /roster/{date}/staff - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req AddStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /roster/{date}/staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /roster/{date}/staff - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgEmployeeRequired)
		return
	}

	day, err := h.service.AddStaffToDay(r.Context(), date, req.EmployeeID)
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrInvalidInput):
			h.logger.Warn("POST /roster/{date}/staff - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgEmployeeRequired)

		case errors.Is(err, roster.ErrNoOpenSlot):
			h.logger.Warn("POST /roster/{date}/staff - No open slot: employee_id=%s, date=%s",
				req.EmployeeID, calendar.FormatDate(date))
			handlers.RespondNotFound(w, msgNoOpenSlot)

		case errors.Is(err, availability.ErrInvalidState), errors.Is(err, availability.ErrAvailabilityNotFound):
			h.logger.Warn("POST /roster/{date}/staff - Concurrent change: %v", err)
			handlers.RespondConflict(w, msgAlreadyChanged)

		default:
			if handlers.RespondUpstreamError(w, err) {
				h.logger.Warn("POST /roster/{date}/staff - Upstream error: %v", err)
				return
			}
			h.logger.Error("POST /roster/{date}/staff - Failed to add staff: employee_id=%s, error=%v",
				req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /roster/{date}/staff - Employee assigned: employee_id=%s, date=%s",
		req.EmployeeID, calendar.FormatDate(date))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainDayRoster(day))
}
