package domain

import "errors"

// Ошибки, общие для всех реализаций хранилищ и внешних клиентов.
// Репозитории оборачивают их, сервисы проверяют через errors.Is.
var (
	ErrAvailabilityNotFound = errors.New("availability not found")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrCustomerNotFound     = errors.New("customer not found")

	// ErrSlotTaken у сотрудника уже есть активная запись на этот момент
	ErrSlotTaken = errors.New("employee already booked at this time")

	// ErrInvalidTransition недопустимый переход статуса доступности
	ErrInvalidTransition = errors.New("invalid availability status transition")

	// ErrUpstreamUnavailable внешний сервис недоступен (сеть, таймаут)
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamFailure внешний сервис ответил 5xx
	ErrUpstreamFailure = errors.New("upstream failure")

	// ErrUpstreamRejected внешний сервис отклонил запрос (4xx)
	ErrUpstreamRejected = errors.New("upstream rejected request")
)
