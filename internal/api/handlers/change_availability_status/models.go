package change_availability_status

import "github.com/m04kA/SMC-ScheduleService/internal/domain"

// ChangeStatusRequest HTTP request model
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,availability_status"` // OPEN, ASSIGNED, CLOSED
}

// Target возвращает целевой статус
func (r *ChangeStatusRequest) Target() (domain.AvailabilityStatus, error) {
	return domain.ParseAvailabilityStatus(r.Status)
}
