package userservice

import "github.com/m04kA/SMC-ScheduleService/internal/domain"

// Employee модель сотрудника из UserService
type Employee struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ToDomain конвертирует в доменную модель
func (e Employee) ToDomain() *domain.Employee {
	return &domain.Employee{
		ID:    e.ID,
		Name:  e.Name,
		Email: e.Email,
		Phone: e.Phone,
	}
}

// Customer модель клиента из UserService
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToDomain конвертирует в доменную модель
func (c Customer) ToDomain() *domain.Customer {
	return &domain.Customer{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	}
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
