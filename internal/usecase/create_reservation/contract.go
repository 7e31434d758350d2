package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	AddSupplements(ctx context.Context, reservationID int64, supplements []domain.ReservationSupplement) error
	AddAnswers(ctx context.Context, reservationID int64, answers []domain.ClientAnswer) error
	AddStatusHistory(ctx context.Context, h *domain.StatusHistory) error
	// FindOverlapping возвращает ID активной брони, пересекающей интервал,
	// либо nil, если интервал свободен
	FindOverlapping(ctx context.Context, start, end time.Time, excludeID *int64) (*int64, error)
}

// CatalogRepository интерфейс справочника услуг
type CatalogRepository interface {
	GetPackOffer(ctx context.Context, id int64) (*domain.PackOffer, error)
	GetDecor(ctx context.Context, id int64) (*domain.Decor, error)
	GetTheme(ctx context.Context, id int64) (*domain.Theme, error)
	GetSupplements(ctx context.Context, ids []int64) ([]*domain.SupplementService, error)
}

// ConfigProvider поставщик снапшота конфигурации доступности
type ConfigProvider interface {
	Snapshot() *domain.AvailabilityConfig
}

// TransactionManager интерфейс для управления транзакциями.
// Проверка пересечений и запись брони выполняются одной атомарной единицей
// с уровнем изоляции SERIALIZABLE
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ConfirmationIDGenerator генератор внешних идентификаторов брони
type ConfirmationIDGenerator interface {
	NewConfirmationID() string
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
