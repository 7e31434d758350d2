package reschedule_reservation

import (
	"context"
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	// FindOverlapping возвращает ID активной брони, пересекающей интервал,
	// либо nil, если интервал свободен
	FindOverlapping(ctx context.Context, start, end time.Time, excludeID *int64) (*int64, error)
	UpdateInterval(ctx context.Context, id int64, start, end time.Time, durationHours int) error
	AddNote(ctx context.Context, n *domain.Note) (*domain.Note, error)
}

// ConfigProvider поставщик снапшота конфигурации доступности
type ConfigProvider interface {
	Snapshot() *domain.AvailabilityConfig
}

// TransactionManager интерфейс для управления транзакциями.
// Проверка пересечений и перенос выполняются одной атомарной единицей
// с уровнем изоляции SERIALIZABLE
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
