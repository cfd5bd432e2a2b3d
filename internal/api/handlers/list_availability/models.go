package list_availability

import (
	"net/url"

	"github.com/m04kA/SMC-ScheduleService/internal/service/availability/models"
)

// AvailabilityListResponse HTTP response model
type AvailabilityListResponse struct {
	Availability []*models.AvailabilityResponse `json:"availability"`
	Total        int                            `json:"total"`
}

// ParseQuery разбирает date (обязательный), employeeId и status
func ParseQuery(q url.Values) *models.ListAvailabilityRequest {
	req := &models.ListAvailabilityRequest{Date: q.Get("date")}
	if v := q.Get("employeeId"); v != "" {
		req.EmployeeID = &v
	}
	if v := q.Get("status"); v != "" {
		req.Status = &v
	}
	return req
}
