package availability

import "errors"

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	// (часы работы, длительность слота, окна бронирования, timezone)
	ErrInvalidConfig = errors.New("availability.service: invalid config")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability.service: internal error")
)
