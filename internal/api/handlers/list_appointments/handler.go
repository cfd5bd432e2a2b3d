package list_appointments

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
)

const msgInvalidFilter = "некорректный фильтр: нужен хотя бы один из employeeId, customerId, date"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?employeeId=&customerId=&date=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := parseQuery(r.URL.Query())

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			if handlers.RespondUpstreamError(w, err) {
				h.logger.Warn("GET /appointments - Upstream error: %v", err)
				return
			}
			h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Found %d appointments", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(q url.Values) *models.ListAppointmentsRequest {
	return &models.ListAppointmentsRequest{
		EmployeeID: optional(q, "employeeId"),
		CustomerID: optional(q, "customerId"),
		Date:       optional(q, "date"),
		Status:     optional(q, "status"),
	}
}

func optional(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	v := q.Get(key)
	return &v
}
