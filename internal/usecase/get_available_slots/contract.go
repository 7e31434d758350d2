package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	// List получает брони по фильтру (статусы и диапазон начала)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// CatalogRepository интерфейс справочника услуг
type CatalogRepository interface {
	GetPackOffer(ctx context.Context, id int64) (*domain.PackOffer, error)
}

// ConfigProvider поставщик снапшота конфигурации доступности
type ConfigProvider interface {
	Snapshot() *domain.AvailabilityConfig
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
