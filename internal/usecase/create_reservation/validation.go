package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
)

const (
	maxCustomerFieldLength = 255
	maxNotesLength         = 2000
	maxCustomThemeLength   = 255
)

// validateRequest проверяет обязательные поля и ограничения запроса
func validateRequest(req Request) error {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customer_name is required", ErrInvalidInput)
	}
	if len(name) > maxCustomerFieldLength {
		return fmt.Errorf("%w: customer_name is too long", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.CustomerEmail)
	if email == "" {
		return fmt.Errorf("%w: customer_email is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") || len(email) > maxCustomerFieldLength {
		return fmt.Errorf("%w: customer_email is invalid", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer_phone is required", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: start_at is required", ErrInvalidInput)
	}

	if req.PackOfferID <= 0 {
		return fmt.Errorf("%w: pack_offer_id must be positive", ErrInvalidInput)
	}

	if req.ThemeID != nil && req.CustomTheme != nil {
		return fmt.Errorf("%w: theme_id and custom_theme are mutually exclusive", ErrInvalidInput)
	}
	if req.CustomTheme != nil && len(*req.CustomTheme) > maxCustomThemeLength {
		return fmt.Errorf("%w: custom_theme is too long", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > maxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	for _, a := range req.Answers {
		if strings.TrimSpace(a.Question) == "" {
			return fmt.Errorf("%w: answer question must not be empty", ErrInvalidInput)
		}
	}

	if req.CreatedAsConfirmed && req.AdminID == nil {
		return fmt.Errorf("%w: admin_id is required to create a confirmed reservation", ErrInvalidInput)
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
