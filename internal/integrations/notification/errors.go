package notification

import "errors"

var (
	// ErrInvalidMessage возвращается, когда письмо не заполнено
	ErrInvalidMessage = errors.New("notification: invalid message")

	// ErrRejected возвращается, когда сервис уведомлений отклонил письмо (4xx)
	ErrRejected = errors.New("notification: message rejected")

	// ErrUnavailable возвращается, когда сервис уведомлений недоступен
	ErrUnavailable = errors.New("notification: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notification: internal error")
)
