package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservations.service: reservation not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	// (детали перехода несет domain.TransitionError)
	ErrInvalidTransition = errors.New("reservations.service: invalid status transition")

	// ErrCompletionTooEarly возвращается при попытке завершить бронь
	// до окончания сессии
	ErrCompletionTooEarly = errors.New("reservations.service: session has not ended yet")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations.service: internal error")
)
