package availability

import "errors"

var (
	// ErrAvailabilityNotFound возвращается, когда запись доступности не найдена
	ErrAvailabilityNotFound = errors.New("availability not found")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден в UserService
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidState возвращается при недопустимом переходе статуса
	ErrInvalidState = errors.New("invalid availability state")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability service: internal error")
)
