package calendar

import (
	"context"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней (только чтение)
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
