package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
)

// validateConfig проверяет инварианты конфигурации доступности.
// Границы рабочих часов обязаны лежать на целых часах: именно это
// гарантирует, что каждый сгенерированный слот начинается в ":00"
func validateConfig(cfg *domain.AvailabilityConfig) error {
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrInvalidConfig, cfg.Timezone)
	}

	if cfg.SlotDurationMinutes < domain.MinSlotDurationMinutes || cfg.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidConfig, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if cfg.SlotDurationMinutes%60 != 0 {
		return fmt.Errorf("%w: slotDurationMinutes must be a whole number of hours", ErrInvalidConfig)
	}

	if cfg.AdvanceBookingDays < domain.MinAdvanceBookingDays || cfg.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidConfig, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if cfg.MinimumNoticeDays < domain.MinMinimumNoticeDays || cfg.MinimumNoticeDays > domain.MaxMinimumNoticeDays {
		return fmt.Errorf("%w: minimumNoticeDays must be between %d and %d",
			ErrInvalidConfig, domain.MinMinimumNoticeDays, domain.MaxMinimumNoticeDays)
	}

	days := []struct {
		name  string
		hours *domain.DayHours
	}{
		{"monday", cfg.BusinessHours.Monday},
		{"tuesday", cfg.BusinessHours.Tuesday},
		{"wednesday", cfg.BusinessHours.Wednesday},
		{"thursday", cfg.BusinessHours.Thursday},
		{"friday", cfg.BusinessHours.Friday},
		{"saturday", cfg.BusinessHours.Saturday},
		{"sunday", cfg.BusinessHours.Sunday},
	}

	for _, day := range days {
		if day.hours == nil {
			continue
		}
		if err := validateDayHours(day.name, day.hours); err != nil {
			return err
		}
	}

	return nil
}

func validateDayHours(name string, hours *domain.DayHours) error {
	if err := hours.Start.Validate(); err != nil {
		return fmt.Errorf("%w: %s start: %v", ErrInvalidConfig, name, err)
	}
	if err := hours.End.Validate(); err != nil {
		return fmt.Errorf("%w: %s end: %v", ErrInvalidConfig, name, err)
	}
	if !hours.Start.IsBefore(hours.End) {
		return fmt.Errorf("%w: %s: start must be before end", ErrInvalidConfig, name)
	}
	if hours.Start.Minute() != 0 || hours.End.Minute() != 0 {
		return fmt.Errorf("%w: %s: business hours must align to whole hours", ErrInvalidConfig, name)
	}
	return nil
}
