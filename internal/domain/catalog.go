package domain

import "time"

// Catalog rows are read-only inputs to slot and pricing computation.
// The scheduling engine never mutates them.

// Decor is a studio decor option. Decor does not add cost.
type Decor struct {
	ID        int64
	Name      string
	IsActive  bool
	SortOrder int
	CreatedAt time.Time
}

// PackOffer is a bookable session pack: it fixes the session duration
// and the base price of a reservation.
type PackOffer struct {
	ID              int64
	Name            string
	BasePrice       float64
	DurationMinutes int
	IsActive        bool
	SortOrder       int
	CreatedAt       time.Time
}

// DurationHours returns the pack duration in whole hours.
// IsWholeHours must be checked first.
func (p *PackOffer) DurationHours() int {
	return p.DurationMinutes / 60
}

// IsWholeHours reports whether the pack duration is a whole number of hours.
// Bookings must align to hour boundaries, so packs with partial-hour
// durations cannot be scheduled.
func (p *PackOffer) IsWholeHours() bool {
	return p.DurationMinutes > 0 && p.DurationMinutes%60 == 0
}

// SupplementService is an optional paid add-on to a session
type SupplementService struct {
	ID        int64
	Name      string
	Price     float64
	IsActive  bool
	SortOrder int
	CreatedAt time.Time
}

// Theme is a session theme option. Theme does not add cost.
type Theme struct {
	ID        int64
	Name      string
	IsActive  bool
	SortOrder int
	CreatedAt time.Time
}
