package list_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability/models"
)

const msgInvalidFilter = "некорректный фильтр: date обязателен (YYYY-MM-DD), status одно из OPEN, ASSIGNED, CLOSED"

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

// Handle GET /api/v1/availability?date=2024-06-10&employeeId=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := ParseQuery(r.URL.Query())

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			if handlers.RespondUpstreamError(w, err) {
				h.logger.Warn("GET /availability - Upstream error: %v", err)
				return
			}
			h.logger.Error("GET /availability - Failed to list availability: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := &AvailabilityListResponse{
		Availability: models.FromDomainAvailabilityList(list),
		Total:        len(list),
	}

	h.logger.Info("GET /availability - Found %d records for date=%s", response.Total, req.Date)
	handlers.RespondJSON(w, http.StatusOK, response)
}
