package assignment

import "errors"

var (
	// ErrNoAvailability возвращается, когда на дату и слот нет ни одного свободного сотрудника
	ErrNoAvailability = errors.New("assignment: no employee available for the requested slot")
)
