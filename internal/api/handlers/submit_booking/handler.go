package submit_booking

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	submitBooking "github.com/m04kA/SMC-ScheduleService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFields      = "некорректные поля запроса"
	msgInvalidSlot        = "выбранное время не входит в расписание"
	msgBookingInPast      = "нельзя записаться на прошедшее время"
	msgDateTooFar         = "дата записи слишком далеко в будущем"
	msgInvalidInput       = "некорректные данные записи"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgConflict           = "сотрудник уже занят в это время"
	msgNoAvailability     = "на выбранное время нет свободных сотрудников"
	msgNotificationFailed = "запись создана, но уведомление клиенту не отправлено"
	msgForeignCustomer    = "записать другого клиента может только администратор"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /appointments - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields+": "+err.Error())
		return
	}

	customerID, ok := customerFor(r.Context(), req.CustomerID)
	if !ok {
		h.logger.Warn("POST /appointments - Foreign customer rejected: customer_id=%s", req.CustomerID)
		handlers.RespondForbidden(w, msgForeignCustomer)
		return
	}
	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrInvalidSlot):
			h.logger.Warn("POST /appointments - Invalid slot: slot=%s", req.Slot)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, submitBooking.ErrBookingInPast):
			h.logger.Warn("POST /appointments - Booking in past: date=%s, slot=%s", req.Date, req.Slot)
			handlers.RespondBadRequest(w, msgBookingInPast)

		case errors.Is(err, submitBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far in future: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, submitBooking.ErrEmployeeNotFound):
			h.logger.Warn("POST /appointments - Employee not found: %v", err)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, submitBooking.ErrConflict):
			h.logger.Warn("POST /appointments - Conflict: date=%s, slot=%s", req.Date, req.Slot)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, submitBooking.ErrNoAvailability):
			h.logger.Warn("POST /appointments - No availability: date=%s, slot=%s", req.Date, req.Slot)
			handlers.RespondConflict(w, msgNoAvailability)

		default:
			if handlers.RespondUpstreamError(w, err) {
				h.logger.Warn("POST /appointments - Upstream error: %v", err)
				return
			}
			h.logger.Error("POST /appointments - Failed to submit booking: customer_id=%s, error=%v",
				useCaseReq.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if result.NotificationFailed {
		h.logger.Warn("POST /appointments - Appointment created without notification: appointment_id=%s, error=%s",
			result.Appointment.ID, result.NotificationError)
	} else {
		h.logger.Info("POST /appointments - Appointment created: appointment_id=%s, employee_id=%s",
			result.Appointment.ID, result.Appointment.EmployeeID)
	}
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// customerFor определяет клиента записи.
// Аутентифицированный пользователь записывает себя, customerId из тела учитывается только для admin.
func customerFor(ctx context.Context, bodyCustomerID string) (string, bool) {
	bodyCustomerID = strings.TrimSpace(bodyCustomerID)
	userID, authenticated := middleware.GetUserID(ctx)
	if !authenticated {
		return bodyCustomerID, true
	}
	if bodyCustomerID == "" || bodyCustomerID == userID {
		return userID, true
	}
	if role, _ := middleware.GetUserRole(ctx); role == middleware.RoleAdmin {
		return bodyCustomerID, true
	}
	return "", false
}
