package reschedule_reservation

import "time"

// RescheduleReservationRequest HTTP request model
type RescheduleReservationRequest struct {
	NewStartAt time.Time `json:"newStartAt"` // RFC 3339
	NewEndAt   time.Time `json:"newEndAt"`   // RFC 3339
}
