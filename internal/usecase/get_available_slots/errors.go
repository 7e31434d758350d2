package get_available_slots

import "errors"

var (
	// ErrPackOfferNotFound возвращается, когда пакет не найден
	ErrPackOfferNotFound = errors.New("get_available_slots: pack offer not found")

	// ErrPackNotBookable возвращается, когда пакет неактивен или его
	// длительность не кратна целому часу
	ErrPackNotBookable = errors.New("get_available_slots: pack offer is not bookable")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrBeyondAdvanceWindow возвращается, когда дата превышает ограничение advanceBookingDays
	ErrBeyondAdvanceWindow = errors.New("get_available_slots: date is beyond the advance booking window")

	// ErrConfigUnavailable возвращается, когда снапшот конфигурации не опубликован
	ErrConfigUnavailable = errors.New("get_available_slots: availability config is not loaded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
