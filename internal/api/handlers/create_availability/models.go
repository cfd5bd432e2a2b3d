package create_availability

import "github.com/m04kA/SMC-ScheduleService/internal/service/availability/models"

// CreateAvailabilityRequest HTTP request model
type CreateAvailabilityRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Date       string `json:"date" validate:"required,date"`      // "2024-06-10"
	StartTime  string `json:"startTime" validate:"required,hhmm"` // "09:00"
	EndTime    string `json:"endTime" validate:"required,hhmm"`   // "18:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateAvailabilityRequest) ToServiceRequest() *models.CreateAvailabilityRequest {
	return &models.CreateAvailabilityRequest{
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
	}
}
