package submit_booking

import (
	"errors"

	"github.com/m04kA/SMC-ScheduleService/internal/service/assignment"
)

var (
	// ErrInvalidInput возвращается при невалидных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input")

	// ErrInvalidSlot слот не входит в расписание слотов
	ErrInvalidSlot = errors.New("submit_booking: slot is not offered")

	// ErrBookingInPast дата или время записи уже прошли
	ErrBookingInPast = errors.New("submit_booking: booking in the past")

	// ErrDateTooFarInFuture дата за пределами горизонта записи
	ErrDateTooFarInFuture = errors.New("submit_booking: date too far in future")

	// ErrEmployeeNotFound указанный сотрудник не найден
	ErrEmployeeNotFound = errors.New("submit_booking: employee not found")

	// ErrConflict у выбранного сотрудника уже есть запись на это время
	ErrConflict = errors.New("submit_booking: employee already booked at this time")

	// ErrNoAvailability нет свободных сотрудников на этот слот
	ErrNoAvailability = assignment.ErrNoAvailability

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("submit_booking: internal error")
)
