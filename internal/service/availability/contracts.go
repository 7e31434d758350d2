package availability

import (
	"context"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации доступности
type ConfigRepository interface {
	Get(ctx context.Context) (*domain.AvailabilityConfig, error)
	Update(ctx context.Context, cfg *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
