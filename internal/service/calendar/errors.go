package calendar

import "errors"

var (
	// ErrInvalidBucket возвращается при неизвестной проекции календаря
	ErrInvalidBucket = errors.New("calendar.service: invalid bucket")

	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("calendar.service: invalid date range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar.service: internal error")
)
