package reservations

import (
	"context"
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/Studio-ReservationService/internal/infra/storage/reservation"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, upd reservationRepo.StatusUpdate) error
	AddStatusHistory(ctx context.Context, h *domain.StatusHistory) error
	ListStatusHistory(ctx context.Context, reservationID int64) ([]*domain.StatusHistory, error)
	AddNote(ctx context.Context, n *domain.Note) (*domain.Note, error)
	ListNotes(ctx context.Context, reservationID int64) ([]*domain.Note, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями.
// Переход статуса и строка журнала пишутся одной атомарной единицей
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
