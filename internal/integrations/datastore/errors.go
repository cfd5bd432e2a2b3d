package datastore

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("datastore client: internal error")

	// ErrInvalidResponse возвращается, когда ответ не удалось разобрать
	ErrInvalidResponse = errors.New("datastore client: invalid response")
)
