package create_reservation

import (
	"errors"
	"fmt"
)

var (
	// ErrPackOfferNotFound возвращается, когда пакет не найден
	ErrPackOfferNotFound = errors.New("create_reservation: pack offer not found")

	// ErrPackNotBookable возвращается, когда пакет неактивен или его
	// длительность не кратна целому часу
	ErrPackNotBookable = errors.New("create_reservation: pack offer is not bookable")

	// ErrDecorNotFound возвращается, когда декорация не найдена
	ErrDecorNotFound = errors.New("create_reservation: decor not found")

	// ErrThemeNotFound возвращается, когда тема не найдена
	ErrThemeNotFound = errors.New("create_reservation: theme not found")

	// ErrSupplementNotFound возвращается, когда доплата не найдена
	ErrSupplementNotFound = errors.New("create_reservation: supplement service not found")

	// ErrConflict возвращается, когда интервал пересекается с активной бронью
	ErrConflict = errors.New("create_reservation: time slot is already taken")

	// ErrInsufficientNotice возвращается при нарушении minimumNoticeDays
	ErrInsufficientNotice = errors.New("create_reservation: minimum notice requirement is not met")

	// ErrBeyondAdvanceWindow возвращается, когда дата превышает ограничение advanceBookingDays
	ErrBeyondAdvanceWindow = errors.New("create_reservation: date is beyond the advance booking window")

	// ErrOutsideBusinessHours возвращается, когда интервал не помещается в рабочие часы дня
	ErrOutsideBusinessHours = errors.New("create_reservation: interval is outside business hours")

	// ErrNonHourBoundary возвращается, когда время начала не выровнено по границе часа
	ErrNonHourBoundary = errors.New("create_reservation: start time must be aligned to an hour boundary")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid date")

	// ErrConfigUnavailable возвращается, когда снапшот конфигурации не опубликован
	ErrConfigUnavailable = errors.New("create_reservation: availability config is not loaded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// ConflictError несет ID брони, с которой пересекся запрошенный интервал.
// Разворачивается в ErrConflict через errors.Is
type ConflictError struct {
	WithReservationID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: conflicts with reservation %d", ErrConflict, e.WithReservationID)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
