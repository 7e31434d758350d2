package domain

import (
	"time"

	"github.com/m04kA/Studio-ReservationService/pkg/types"
)

// DayHours is the open interval for a single weekday.
// Boundaries are wall-clock times in the venue's timezone and must sit on
// whole-hour marks so that every generated slot does too.
type DayHours struct {
	Start types.TimeString
	End   types.TimeString
}

// WeekSchedule is the weekly business-hours template.
// A nil day means the studio is closed that day.
type WeekSchedule struct {
	Monday    *DayHours
	Tuesday   *DayHours
	Wednesday *DayHours
	Thursday  *DayHours
	Friday    *DayHours
	Saturday  *DayHours
	Sunday    *DayHours
}

// ForWeekday returns the open interval for the given weekday (nil = closed)
func (w WeekSchedule) ForWeekday(day time.Weekday) *DayHours {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return nil
	}
}

// AvailabilityConfig is the process-wide scheduling configuration:
// weekly business hours plus booking-window constants.
// Readers always see an immutable snapshot; updates publish a new one.
type AvailabilityConfig struct {
	Timezone            string // IANA id, e.g. "Europe/Paris"
	BusinessHours       WeekSchedule
	SlotDurationMinutes int // slot grid granularity
	AdvanceBookingDays  int // how far in the future bookings may be placed
	MinimumNoticeDays   int // how soon before start a booking may still be placed

	UpdatedAt time.Time
}

// Location resolves the configured IANA timezone.
// Config validation guarantees it resolves; UTC is the defensive fallback.
func (c *AvailabilityConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// AvailabilityConfigUpdate is a partial update of the configuration.
// Nil fields keep their current value. BusinessHours replaces the whole
// weekly template when set.
type AvailabilityConfigUpdate struct {
	Timezone            *string
	BusinessHours       *WeekSchedule
	SlotDurationMinutes *int
	AdvanceBookingDays  *int
	MinimumNoticeDays   *int
}
