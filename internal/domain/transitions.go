package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a status change is not allowed
// by the reservation lifecycle
var ErrInvalidTransition = errors.New("domain: invalid status transition")

// TransitionError carries the rejected from/to status pair.
// It unwraps to ErrInvalidTransition for errors.Is checks.
type TransitionError struct {
	From ReservationStatus
	To   ReservationStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("domain: invalid status transition %s -> %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// allowedTransitions is the single source of truth for the reservation
// lifecycle. confirmed -> pending is deliberately absent: a confirmed
// reservation must be cancelled and recreated.
var allowedTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
	StatusCancelled: {},
	StatusRejected:  {},
	StatusCompleted: {},
}

// ValidateTransition checks the lifecycle table.
// Returns a *TransitionError when the transition is not allowed.
func ValidateTransition(from, to ReservationStatus) error {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &TransitionError{From: from, To: to}
}

// ValidReservationStatus reports whether s is a known reservation status
func ValidReservationStatus(s ReservationStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusRejected, StatusCompleted:
		return true
	}
	return false
}
