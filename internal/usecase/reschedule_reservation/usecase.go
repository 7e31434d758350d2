package reschedule_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/Studio-ReservationService/internal/infra/storage/reservation"
)

// Usecase перенос брони на новый интервал с атомарной проверкой пересечений
type Usecase struct {
	reservationRepo ReservationRepository
	configProvider  ConfigProvider
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUsecase создает новый экземпляр Usecase
func NewUsecase(
	repo ReservationRepository,
	configProvider ConfigProvider,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		reservationRepo: repo,
		configProvider:  configProvider,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет перенос брони
func (uc *Usecase) Execute(ctx context.Context, req Request) (*domain.Reservation, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Снапшот конфигурации доступности
	cfg := uc.configProvider.Snapshot()
	if cfg == nil {
		uc.logger.Error("[RescheduleReservation] Availability config is not loaded")
		return nil, ErrConfigUnavailable
	}

	loc := cfg.Location()
	now := uc.timeProvider.Now().In(loc)

	// 3. Выравнивание по границе часа: и начало, и конец на ":00",
	// длительность - целое число часов
	newStart := req.NewStartAt.In(loc)
	newEnd := req.NewEndAt.In(loc)
	if newStart.Minute() != 0 || newStart.Second() != 0 || newStart.Nanosecond() != 0 {
		return nil, fmt.Errorf("%w: start %s", ErrNonHourBoundary, newStart.Format("15:04"))
	}

	span := newEnd.Sub(newStart)
	if span%time.Hour != 0 {
		return nil, fmt.Errorf("%w: got %s", ErrNonWholeHourDuration, span)
	}
	newDurationHours := int(span / time.Hour)

	if newEnd.Minute() != 0 || newEnd.Second() != 0 || newEnd.Nanosecond() != 0 {
		return nil, fmt.Errorf("%w: end %s", ErrNonHourBoundary, newEnd.Format("15:04"))
	}

	// 4. Проверка даты относительно текущего момента
	if newStart.Before(now) {
		return nil, fmt.Errorf("%w: start is in the past", ErrInvalidDate)
	}
	if !withinAdvanceWindow(newStart, now, cfg.AdvanceBookingDays, loc) {
		return nil, fmt.Errorf("%w: limit is %d days", ErrBeyondAdvanceWindow, cfg.AdvanceBookingDays)
	}
	if !satisfiesNotice(newStart, now, cfg.MinimumNoticeDays, loc) {
		return nil, fmt.Errorf("%w: at least %d days required", ErrInsufficientNotice, cfg.MinimumNoticeDays)
	}

	// 5. Чтение брони, проверка интервала и перенос одной атомарной единицей
	var updated *domain.Reservation
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return fmt.Errorf("%w: id=%d", ErrReservationNotFound, req.ReservationID)
			}
			return fmt.Errorf("%w: failed to get reservation: %w", ErrInternal, err)
		}

		// Переносить можно только активную бронь
		if !res.IsActive() {
			return fmt.Errorf("%w: status=%s", ErrReservationNotActive, res.Status)
		}

		// Новый интервал проверяется по тем же правилам, что и при создании
		if !fitsBusinessHours(newStart, newDurationHours, cfg, loc) {
			return fmt.Errorf("%w: %s - %s", ErrOutsideBusinessHours,
				newStart.Format("15:04"), newEnd.Format("15:04"))
		}

		// Своя бронь исключается из проверки: перенос внутри собственного
		// интервала всегда допустим
		conflictID, err := uc.reservationRepo.FindOverlapping(txCtx, newStart, newEnd, &req.ReservationID)
		if err != nil {
			return fmt.Errorf("%w: failed to check overlaps: %w", ErrInternal, err)
		}
		if conflictID != nil {
			return &ConflictError{WithReservationID: *conflictID}
		}

		if err := uc.reservationRepo.UpdateInterval(txCtx, res.ID, newStart, newEnd, newDurationHours); err != nil {
			return fmt.Errorf("%w: failed to update interval: %w", ErrInternal, err)
		}

		// След переноса остается в заметках брони
		noteText := fmt.Sprintf("Rescheduled from %s to %s",
			res.StartAt.In(loc).Format(time.RFC3339), newStart.Format(time.RFC3339))
		if _, err := uc.reservationRepo.AddNote(txCtx, &domain.Note{
			ReservationID: res.ID,
			NoteText:      noteText,
			CreatedBy:     req.AdminID,
		}); err != nil {
			return fmt.Errorf("%w: failed to add note: %w", ErrInternal, err)
		}

		res.StartAt = newStart
		res.EndAt = newEnd
		res.DurationHours = newDurationHours
		updated = res

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound),
			errors.Is(err, ErrReservationNotActive),
			errors.Is(err, ErrOutsideBusinessHours),
			errors.Is(err, ErrConflict):
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.logger.Error("[RescheduleReservation] Transaction failed: %v", err)
			return nil, err
		default:
			uc.logger.Error("[RescheduleReservation] Transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
		}
	}

	uc.logger.Info("[RescheduleReservation] Reservation %d moved to %s by admin %d",
		updated.ID, newStart.Format(time.RFC3339), req.AdminID)

	return updated, nil
}
