package domain

import "time"

// StatusHistory is one append-only audit row per lifecycle event.
// OldStatus is nil for the creation event. Rows are never mutated or deleted
// except by the hard-delete of the whole reservation.
type StatusHistory struct {
	ID            int64
	ReservationID int64
	OldStatus     *ReservationStatus
	NewStatus     ReservationStatus
	Notes         *string
	ChangedAt     time.Time
}

// Note is an append-only internal admin note on a reservation.
// Notes have no edit or delete path.
type Note struct {
	ID            int64
	ReservationID int64
	NoteText      string
	CreatedBy     int64
	CreatedAt     time.Time
}
