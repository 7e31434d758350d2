package get_config

import (
	"context"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
)

type AvailabilityService interface {
	Get(ctx context.Context) (*domain.AvailabilityConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
