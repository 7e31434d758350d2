package list_calendar

import (
	"context"
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	"github.com/m04kA/Studio-ReservationService/internal/service/calendar"
)

type CalendarService interface {
	List(ctx context.Context, bucket domain.CalendarBucket, from, to time.Time) ([]calendar.Entry, error)
}

// ConfigProvider поставщик снапшота конфигурации доступности.
// Нужен, чтобы границы дней диапазона считались в зоне студии
type ConfigProvider interface {
	Snapshot() *domain.AvailabilityConfig
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
