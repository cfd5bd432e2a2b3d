package remove_staff

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
	msgInvalidDate      = "некорректная дата, ожидается YYYY-MM-DD"
	msgEmployeeRequired = "не указан сотрудник"
	msgNotAssigned      = "сотрудник не назначен на эту дату"
	msgAlreadyChanged   = "окно доступности уже изменено, повторите запрос"
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

// Handle DELETE /api/v1/roster/{date}/staff/{employeeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := calendar.ParseDate(vars["date"])
	if err != nil {
		h.logger.Warn("DELETE /roster/{date}/staff/{id} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	employeeID := vars["employeeId"]

	day, err := h.service.RemoveAssignment(r.Context(), date, employeeID)
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrInvalidInput):
			h.logger.Warn("DELETE /roster/{date}/staff/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgEmployeeRequired)

		case errors.Is(err, roster.ErrAssignmentNotFound):
			h.logger.Warn("DELETE /roster/{date}/staff/{id} - Not assigned: employee_id=%s, date=%s",
				employeeID, calendar.FormatDate(date))
			handlers.RespondNotFound(w, msgNotAssigned)

		case errors.Is(err, availability.ErrInvalidState), errors.Is(err, availability.ErrAvailabilityNotFound):
			h.logger.Warn("DELETE /roster/{date}/staff/{id} - Concurrent change: %v", err)
			handlers.RespondConflict(w, msgAlreadyChanged)

		default:
			if handlers.RespondUpstreamError(w, err) {
				h.logger.Warn("DELETE /roster/{date}/staff/{id} - Upstream error: %v", err)
				return
			}
			h.logger.Error("DELETE /roster/{date}/staff/{id} - Failed to remove staff: employee_id=%s, error=%v",
				employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /roster/{date}/staff/{id} - Assignment removed: employee_id=%s, date=%s",
		employeeID, calendar.FormatDate(date))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainDayRoster(day))
}
