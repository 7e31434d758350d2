// Package calendar - read-only проекции броней для отрисовки календаря.
// Никогда не изменяет данные; безопасен при произвольной конкурентности.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
)

// Entry строка календаря для отрисовки
type Entry struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customerName"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Status       string    `json:"status"`
}

// Service сервис календарных проекций
type Service struct {
	repo   ReservationRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(repo ReservationRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List возвращает брони выбранной проекции, начинающиеся в [from, to).
// Проекция "confirmed" включает статусы confirmed и completed,
// "pending" - только pending
func (s *Service) List(ctx context.Context, bucket domain.CalendarBucket, from, to time.Time) ([]Entry, error) {
	statuses := bucket.Statuses()
	if statuses == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBucket, bucket)
	}

	if !from.Before(to) {
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidRange)
	}

	reservations, err := s.repo.List(ctx, domain.ReservationsFilter{
		Statuses:  statuses,
		StartFrom: &from,
		StartTo:   &to,
	})
	if err != nil {
		s.logger.Error("ListCalendar: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	entries := make([]Entry, 0, len(reservations))
	for _, r := range reservations {
		entries = append(entries, Entry{
			ID:           r.ID,
			CustomerName: r.CustomerName,
			Start:        r.StartAt,
			End:          r.EndAt,
			Status:       string(r.Status),
		})
	}

	s.logger.Info("ListCalendar: bucket=%s, %d entries in [%s, %s)",
		bucket, len(entries), from.Format(time.RFC3339), to.Format(time.RFC3339))

	return entries, nil
}
