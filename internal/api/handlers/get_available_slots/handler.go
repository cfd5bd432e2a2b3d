package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
)

const (
	msgInvalidQuery   = "некорректные параметры запроса: from ожидается YYYY-MM-DD, days целое число"
	msgInvalidHorizon = "некорректный горизонт расчета"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots?from=2024-06-10&days=7
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid horizon: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHorizon)

		default:
			if handlers.RespondUpstreamError(w, err) {
				h.logger.Warn("GET /available-slots - Upstream error: %v", err)
				return
			}
			h.logger.Error("GET /available-slots - Failed to compute availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-slots - Computed %d days, fully booked: %d",
		len(response.Days), len(response.FullyBookedDates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
