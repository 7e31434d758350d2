package domain

import (
	"encoding/json"
	"time"
)

// ReservationStatus represents the status of a studio reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusRejected  ReservationStatus = "rejected"
	StatusCompleted ReservationStatus = "completed"
)

// Reservation represents a fixed-duration studio session booking
type Reservation struct {
	ID             int64
	ConfirmationID string // externally shown identifier, unique
	Status         ReservationStatus

	StartAt       time.Time
	EndAt         time.Time
	DurationHours int // redundant with EndAt-StartAt, kept for display
	Timezone      string

	DecorID     *int64
	PackOfferID int64
	ThemeID     *int64
	CustomTheme *string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	Notes    *string
	Metadata json.RawMessage // opaque payload, stored and returned verbatim

	TotalPrice float64

	AssignedAdminID    *int64
	ConfirmedByAdminID *int64

	Supplements []ReservationSupplement
	Answers     []ClientAnswer

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConfirmedAt *time.Time
}

// ReservationSupplement links a reservation to a supplement service with the
// price captured at booking time. Later catalog price edits never alter it.
type ReservationSupplement struct {
	ID             int64
	ReservationID  int64
	SupplementID   int64
	PriceAtBooking float64
}

// ClientAnswer is a denormalized question/answer snapshot attached to a
// reservation. The engine stores it verbatim and never interprets it.
type ClientAnswer struct {
	ID            int64
	ReservationID int64
	Question      string
	Answer        string
}

// IsActive returns true if the reservation blocks its time interval
// (only pending and confirmed reservations participate in conflict checks)
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsTerminal returns true if no further status transition is allowed
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCancelled || r.Status == StatusRejected || r.Status == StatusCompleted
}

// Overlaps reports whether the reservation's [StartAt, EndAt) interval
// overlaps [start, end). Intervals are half-open: back-to-back bookings
// at the exact boundary do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartAt.Before(end) && start.Before(r.EndAt)
}

// CalendarBucket selects a status projection for calendar rendering
type CalendarBucket string

const (
	// BucketConfirmed covers confirmed and completed reservations
	BucketConfirmed CalendarBucket = "confirmed"
	// BucketPending covers pending reservations
	BucketPending CalendarBucket = "pending"
)

// Statuses returns the reservation statuses belonging to the bucket
func (b CalendarBucket) Statuses() []ReservationStatus {
	switch b {
	case BucketConfirmed:
		return []ReservationStatus{StatusConfirmed, StatusCompleted}
	case BucketPending:
		return []ReservationStatus{StatusPending}
	default:
		return nil
	}
}

// ReservationsFilter is the filter for listing reservations
type ReservationsFilter struct {
	Statuses  []ReservationStatus // empty = all statuses
	StartFrom *time.Time          // inclusive lower bound on StartAt
	StartTo   *time.Time          // exclusive upper bound on StartAt
}
