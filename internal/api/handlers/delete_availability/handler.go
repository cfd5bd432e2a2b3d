package delete_availability

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability"
)

const (
	msgInvalidID    = "некорректный ID записи доступности"
	msgNotFound     = "запись доступности не найдена"
	msgCannotDelete = "закрытую запись доступности удалить нельзя"
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

// Handle DELETE /api/v1/availability/{availabilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["availabilityId"])
	if id == "" {
		h.logger.Warn("DELETE /availability/{id} - Empty availability ID")
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, availability.ErrAvailabilityNotFound):
			h.logger.Warn("DELETE /availability/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrInvalidState):
			h.logger.Warn("DELETE /availability/{id} - Cannot delete: id=%s", id)
			handlers.RespondConflict(w, msgCannotDelete)

		default:
			if handlers.RespondUpstreamError(w, err) {
				h.logger.Warn("DELETE /availability/{id} - Upstream error: %v", err)
				return
			}
			h.logger.Error("DELETE /availability/{id} - Failed to delete availability: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/{id} - Availability deleted: id=%s", id)
	handlers.RespondNoContent(w)
}
