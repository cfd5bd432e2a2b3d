package get_availability

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
	msgInvalidID = "некорректный ID записи доступности"
	msgNotFound  = "запись доступности не найдена"
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

// Handle GET /api/v1/availability/{availabilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["availabilityId"])
	if id == "" {
		h.logger.Warn("GET /availability/{id} - Empty availability ID")
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	found, err := h.service.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAvailabilityNotFound):
			h.logger.Warn("GET /availability/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			if handlers.RespondUpstreamError(w, err) {
				h.logger.Warn("GET /availability/{id} - Upstream error: %v", err)
				return
			}
			h.logger.Error("GET /availability/{id} - Failed to get availability: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/{id} - Availability retrieved: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAvailability(found))
}
