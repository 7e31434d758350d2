package change_status

import (
	"context"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	"github.com/m04kA/Studio-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	ChangeStatus(ctx context.Context, id int64, newStatus domain.ReservationStatus, note *string, adminID int64) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
