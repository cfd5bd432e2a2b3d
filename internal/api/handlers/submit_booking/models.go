package submit_booking

import (
	"strings"

	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
	submitBooking "github.com/m04kA/SMC-ScheduleService/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

const notificationFailed = "failed"

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Date        string  `json:"date" validate:"required,date"` // "2024-06-10"
	Slot        string  `json:"slot" validate:"required,hhmm"` // "09:00"
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	CustomerID  string  `json:"customerId,omitempty"`
	EmployeeID  *string `json:"employeeId,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	*models.AppointmentResponse
	EmployeeName string `json:"employeeName,omitempty"`
	AutoAssigned bool   `json:"autoAssigned"`
	Notification string `json:"notification,omitempty"`
	Warning      string `json:"warning,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// customerID уже определен обработчиком (customerFor), поле тела здесь не читается.
func (r *SubmitBookingRequest) ToUseCaseRequest(customerID string) (*submitBooking.Request, error) {
	date, err := calendar.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	slot, err := types.NewTimeStringFromString(r.Slot)
	if err != nil {
		return nil, err
	}

	return &submitBooking.Request{
		Title:       strings.TrimSpace(r.Title),
		Date:        date,
		Slot:        slot,
		Description: r.Description,
		CustomerID:  customerID,
		EmployeeID:  r.EmployeeID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *BookingResponse {
	out := &BookingResponse{
		AppointmentResponse: models.FromDomainAppointment(resp.Appointment),
		EmployeeName:        resp.EmployeeName,
		AutoAssigned:        resp.AutoAssigned,
	}
	if resp.NotificationFailed {
		out.Notification = notificationFailed
		out.Warning = msgNotificationFailed
	}
	return out
}
