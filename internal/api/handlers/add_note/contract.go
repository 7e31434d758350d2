package add_note

import (
	"context"

	"github.com/m04kA/Studio-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	AddNote(ctx context.Context, reservationID int64, text string, createdBy int64) (*models.NoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
