package change_availability_status

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability/models"
)

const (
	msgInvalidID          = "некорректный ID записи доступности"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус, ожидается OPEN, ASSIGNED или CLOSED"
	msgNotFound           = "запись доступности не найдена"
	msgInvalidTransition  = "переход статуса недопустим"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/availability/{availabilityId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["availabilityId"])
	if id == "" {
		h.logger.Warn("PATCH /availability/{id}/status - Empty availability ID")
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req ChangeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /availability/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("PATCH /availability/{id}/status - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}
	target, err := req.Target()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	updated, err := h.service.ChangeStatus(r.Context(), id, target)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAvailabilityNotFound):
			h.logger.Warn("PATCH /availability/{id}/status - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrInvalidState):
			h.logger.Warn("PATCH /availability/{id}/status - Invalid transition: id=%s, target=%s", id, target)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PATCH /availability/{id}/status - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			if handlers.RespondUpstreamError(w, err) {
				h.logger.Warn("PATCH /availability/{id}/status - Upstream error: %v", err)
				return
			}
			h.logger.Error("PATCH /availability/{id}/status - Failed to change status: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /availability/{id}/status - Status changed: id=%s, status=%s", id, updated.Status)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAvailability(updated))
}
