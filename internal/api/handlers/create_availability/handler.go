package create_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFields      = "некорректные поля запроса"
	msgInvalidWindow      = "некорректное окно доступности: начало должно быть раньше конца"
	msgEmployeeNotFound   = "сотрудник не найден"
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

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /availability - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields+": "+err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /availability - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, availability.ErrEmployeeNotFound):
			h.logger.Warn("POST /availability - Employee not found: employee_id=%s", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		default:
			if handlers.RespondUpstreamError(w, err) {
				h.logger.Warn("POST /availability - Upstream error: %v", err)
				return
			}
			h.logger.Error("POST /availability - Failed to create availability: employee_id=%s, error=%v",
				req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability - Availability created: id=%s, employee_id=%s", created.ID, created.EmployeeID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainAvailability(created))
}
