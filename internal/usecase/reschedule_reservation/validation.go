package reschedule_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
)

// validateRequest проверяет обязательные поля запроса
func validateRequest(req Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservation_id must be positive", ErrInvalidInput)
	}

	if req.NewStartAt.IsZero() {
		return fmt.Errorf("%w: new_start_at is required", ErrInvalidInput)
	}

	if req.NewEndAt.IsZero() {
		return fmt.Errorf("%w: new_end_at is required", ErrInvalidInput)
	}

	if !req.NewEndAt.After(req.NewStartAt) {
		return fmt.Errorf("%w: new_end_at must be after new_start_at", ErrInvalidInput)
	}

	if req.AdminID <= 0 {
		return fmt.Errorf("%w: admin_id must be positive", ErrInvalidInput)
	}

	return nil
}

// startOfDay обнуляет время, оставляя только дату в указанной зоне
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// satisfiesNotice проверяет ограничение minimumNoticeDays: между "сегодня"
// и датой брони должно быть не меньше noticeDays суток
func satisfiesNotice(date, now time.Time, noticeDays int, loc *time.Location) bool {
	earliest := startOfDay(now, loc).AddDate(0, 0, noticeDays)
	return !startOfDay(date, loc).Before(earliest)
}

// withinAdvanceWindow проверяет ограничение advanceBookingDays
func withinAdvanceWindow(date, now time.Time, advanceDays int, loc *time.Location) bool {
	latest := startOfDay(now, loc).AddDate(0, 0, advanceDays)
	return !startOfDay(date, loc).After(latest)
}

// fitsBusinessHours проверяет, что интервал сессии целиком попадает в рабочие
// часы своего дня и начинается на допустимой границе слота
func fitsBusinessHours(start time.Time, durationHours int, cfg *domain.AvailabilityConfig, loc *time.Location) bool {
	start = start.In(loc)

	hours := cfg.BusinessHours.ForWeekday(start.Weekday())
	if hours == nil {
		return false
	}

	openMin := hours.Start.MinutesFromMidnight()
	closeMin := hours.End.MinutesFromMidnight()
	startMin := start.Hour()*60 + start.Minute()
	endMin := startMin + durationHours*60

	if startMin < openMin || endMin > closeMin {
		return false
	}

	// Начало должно совпадать с сеткой слотов от времени открытия
	return (startMin-openMin)%cfg.SlotDurationMinutes == 0
}
