package add_staff

// AddStaffRequest HTTP request model
type AddStaffRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
}
