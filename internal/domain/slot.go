package domain

import "time"

// Slot is a candidate {start, end} interval a booking could occupy.
// Both boundaries sit on whole-hour marks in the venue's timezone.
type Slot struct {
	Start time.Time
	End   time.Time
}

// DurationHours returns the slot length in whole hours
func (s Slot) DurationHours() int {
	return int(s.End.Sub(s.Start) / time.Hour)
}

// Overlaps reports whether the slot overlaps [start, end), half-open
func (s Slot) Overlaps(start, end time.Time) bool {
	return s.Start.Before(end) && start.Before(s.End)
}
