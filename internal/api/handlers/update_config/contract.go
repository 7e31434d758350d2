package update_config

import (
	"context"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
)

type AvailabilityService interface {
	Update(ctx context.Context, upd domain.AvailabilityConfigUpdate) (*domain.AvailabilityConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
