package reschedule_reservation

import (
	"errors"
	"fmt"
)

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reschedule_reservation: reservation not found")

	// ErrReservationNotActive возвращается при попытке переноса брони
	// в терминальном статусе
	ErrReservationNotActive = errors.New("reschedule_reservation: reservation is not active")

	// ErrConflict возвращается, когда новый интервал пересекается с активной бронью
	ErrConflict = errors.New("reschedule_reservation: time slot is already taken")

	// ErrInsufficientNotice возвращается при нарушении minimumNoticeDays
	ErrInsufficientNotice = errors.New("reschedule_reservation: minimum notice requirement is not met")

	// ErrBeyondAdvanceWindow возвращается, когда дата превышает ограничение advanceBookingDays
	ErrBeyondAdvanceWindow = errors.New("reschedule_reservation: date is beyond the advance booking window")

	// ErrOutsideBusinessHours возвращается, когда интервал не помещается в рабочие часы дня
	ErrOutsideBusinessHours = errors.New("reschedule_reservation: interval is outside business hours")

	// ErrNonHourBoundary возвращается, когда начало или конец не выровнены по границе часа
	ErrNonHourBoundary = errors.New("reschedule_reservation: interval bounds must be aligned to an hour boundary")

	// ErrNonWholeHourDuration возвращается, когда длительность нового интервала
	// не кратна целому часу
	ErrNonWholeHourDuration = errors.New("reschedule_reservation: interval duration must be a whole number of hours")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("reschedule_reservation: invalid date")

	// ErrConfigUnavailable возвращается, когда снапшот конфигурации не опубликован
	ErrConfigUnavailable = errors.New("reschedule_reservation: availability config is not loaded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_reservation: internal error")
)

// ConflictError несет ID брони, с которой пересекся новый интервал.
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
