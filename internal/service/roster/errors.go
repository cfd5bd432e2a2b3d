package roster

import "errors"

var (
	// ErrNoOpenSlot возвращается, когда у сотрудника нет OPEN записи на дату
	ErrNoOpenSlot = errors.New("roster: no open availability for employee on this date")

	// ErrAssignmentNotFound возвращается, когда у сотрудника нет ASSIGNED записи на дату
	ErrAssignmentNotFound = errors.New("roster: no assignment for employee on this date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("roster: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("roster: internal error")
)
