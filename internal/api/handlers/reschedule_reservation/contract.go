package reschedule_reservation

import (
	"context"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	rescheduleReservation "github.com/m04kA/Studio-ReservationService/internal/usecase/reschedule_reservation"
)

type RescheduleReservationUseCase interface {
	Execute(ctx context.Context, req rescheduleReservation.Request) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
