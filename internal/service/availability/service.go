// Package availability хранит конфигурацию доступности студии
// (недельное расписание и окна бронирования) и раздает её читателям
// в виде неизменяемого снапшота.
package availability

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
)

// Service сервис конфигурации доступности.
// Чтения идут через atomic-снапшот без блокировок; запись защищена
// мьютексом и публикует новый снапшот только после успешного сохранения
type Service struct {
	repo   ConfigRepository
	logger Logger

	mu       sync.Mutex // сериализует Update
	snapshot atomic.Pointer[domain.AvailabilityConfig]
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(repo ConfigRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Load загружает конфигурацию из хранилища и публикует первый снапшот.
// Вызывается один раз при старте сервиса
func (s *Service) Load(ctx context.Context) error {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}

	s.snapshot.Store(cfg)
	s.logger.Info("AvailabilityConfig loaded: timezone=%s, slotDuration=%dm, advance=%dd, notice=%dd",
		cfg.Timezone, cfg.SlotDurationMinutes, cfg.AdvanceBookingDays, cfg.MinimumNoticeDays)
	return nil
}

// Snapshot возвращает последний опубликованный снапшот конфигурации.
// Снапшот неизменяем; читатели не блокируются
func (s *Service) Snapshot() *domain.AvailabilityConfig {
	return s.snapshot.Load()
}

// Get возвращает текущую конфигурацию
func (s *Service) Get(ctx context.Context) (*domain.AvailabilityConfig, error) {
	if cfg := s.snapshot.Load(); cfg != nil {
		return cfg, nil
	}
	// Снапшот ещё не опубликован - читаем из хранилища
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return cfg, nil
}

// Update применяет частичное обновление конфигурации.
// Валидация выполняется над результирующей конфигурацией; новый снапшот
// публикуется только после успешной записи в хранилище
func (s *Service) Update(ctx context.Context, upd domain.AvailabilityConfigUpdate) (*domain.AvailabilityConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	next := copyConfig(current)

	if upd.Timezone != nil {
		next.Timezone = *upd.Timezone
	}
	if upd.BusinessHours != nil {
		next.BusinessHours = copySchedule(*upd.BusinessHours)
	}
	if upd.SlotDurationMinutes != nil {
		next.SlotDurationMinutes = *upd.SlotDurationMinutes
	}
	if upd.AdvanceBookingDays != nil {
		next.AdvanceBookingDays = *upd.AdvanceBookingDays
	}
	if upd.MinimumNoticeDays != nil {
		next.MinimumNoticeDays = *upd.MinimumNoticeDays
	}

	if err := validateConfig(next); err != nil {
		s.logger.Warn("UpdateConfig: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.repo.Update(ctx, next)
	if err != nil {
		s.logger.Error("UpdateConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.snapshot.Store(saved)
	s.logger.Info("AvailabilityConfig updated: timezone=%s, slotDuration=%dm, advance=%dd, notice=%dd",
		saved.Timezone, saved.SlotDurationMinutes, saved.AdvanceBookingDays, saved.MinimumNoticeDays)

	return saved, nil
}

// copyConfig делает глубокую копию конфигурации, чтобы опубликованный
// снапшот оставался неизменяемым
func copyConfig(cfg *domain.AvailabilityConfig) *domain.AvailabilityConfig {
	out := *cfg
	out.BusinessHours = copySchedule(cfg.BusinessHours)
	return &out
}

func copySchedule(w domain.WeekSchedule) domain.WeekSchedule {
	return domain.WeekSchedule{
		Monday:    copyDay(w.Monday),
		Tuesday:   copyDay(w.Tuesday),
		Wednesday: copyDay(w.Wednesday),
		Thursday:  copyDay(w.Thursday),
		Friday:    copyDay(w.Friday),
		Saturday:  copyDay(w.Saturday),
		Sunday:    copyDay(w.Sunday),
	}
}

func copyDay(d *domain.DayHours) *domain.DayHours {
	if d == nil {
		return nil
	}
	out := *d
	return &out
}
