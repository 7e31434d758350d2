// Package reservations реализует жизненный цикл брони: переходы статуса
// с append-only журналом, заметки администратора и физическое удаление.
package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/Studio-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/Studio-ReservationService/internal/service/reservations/models"
)

// Service сервис жизненного цикла броней
type Service struct {
	repo         ReservationRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(repo ReservationRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:         repo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронь вместе с журналом статусов и заметками
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, []models.StatusHistoryResponse, []models.NoteResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, nil, nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, nil, nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	history, err := s.repo.ListStatusHistory(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list status history for id=%d: %v", id, err)
		return nil, nil, nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	notes, err := s.repo.ListNotes(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list notes for id=%d: %v", id, err)
		return nil, nil, nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), models.FromDomainHistory(history), models.FromDomainNotes(notes), nil
}

// ChangeStatus выполняет переход статуса по таблице жизненного цикла.
// Обновление статуса и строка журнала пишутся в одной транзакции:
// переход без журнала (или наоборот) - нарушение целостности данных
func (s *Service) ChangeStatus(ctx context.Context, id int64, newStatus domain.ReservationStatus, note *string, adminID int64) (*models.ReservationResponse, error) {
	s.logger.Info("ChangeStatus: reservation id=%d -> %s by admin=%d", id, newStatus, adminID)

	if !domain.ValidReservationStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, newStatus)
	}

	var result *domain.Reservation

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: ChangeStatus - repository error: %v", ErrInternal, err)
		}

		oldStatus := reservation.Status

		if err := domain.ValidateTransition(oldStatus, newStatus); err != nil {
			s.logger.Warn("ChangeStatus: transition %s -> %s rejected for id=%d", oldStatus, newStatus, id)
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		now := s.timeProvider.Now()

		// Завершить сессию можно только после её окончания
		if newStatus == domain.StatusCompleted && now.Before(reservation.EndAt) {
			s.logger.Warn("ChangeStatus: completion before end rejected for id=%d (ends %s)", id, reservation.EndAt)
			return ErrCompletionTooEarly
		}

		upd := reservationRepo.StatusUpdate{Status: newStatus}
		if newStatus == domain.StatusConfirmed {
			upd.ConfirmedByAdminID = &adminID
			upd.ConfirmedAt = &now
		}

		if err := s.repo.UpdateStatus(txCtx, id, upd); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: ChangeStatus - repository error: %v", ErrInternal, err)
		}

		history := &domain.StatusHistory{
			ReservationID: id,
			OldStatus:     &oldStatus,
			NewStatus:     newStatus,
			Notes:         note,
		}
		if err := s.repo.AddStatusHistory(txCtx, history); err != nil {
			return fmt.Errorf("%w: ChangeStatus - history error: %v", ErrInternal, err)
		}

		reservation.Status = newStatus
		reservation.UpdatedAt = now
		if newStatus == domain.StatusConfirmed {
			reservation.ConfirmedByAdminID = &adminID
			reservation.ConfirmedAt = &now
		}
		result = reservation
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("ChangeStatus: reservation id=%d -> %s done", id, newStatus)
	return models.FromDomainReservation(result), nil
}

// AddNote добавляет внутреннюю заметку администратора
func (s *Service) AddNote(ctx context.Context, reservationID int64, text string, createdBy int64) (*models.NoteResponse, error) {
	s.logger.Info("AddNote: reservation id=%d by admin=%d", reservationID, createdBy)

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: note text is required", ErrInvalidInput)
	}
	if len(text) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: note text exceeds %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	// Проверяем существование брони
	if _, err := s.repo.GetByID(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("AddNote: reservation id=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: AddNote - repository error: %v", ErrInternal, err)
	}

	note, err := s.repo.AddNote(ctx, &domain.Note{
		ReservationID: reservationID,
		NoteText:      text,
		CreatedBy:     createdBy,
	})
	if err != nil {
		s.logger.Error("AddNote: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: AddNote - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainNotes([]*domain.Note{note})
	return &resp[0], nil
}

// Delete физически удаляет бронь вместе со снапшотами, заметками и журналом.
// В отличие от отмены удаление стирает аудиторский след; операции нельзя
// путать - отмена сохраняет историю, удаление уничтожает её
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: hard-deleting reservation id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.repo.Delete(txCtx, id); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrReservationNotFound) {
			s.logger.Error("Delete: failed for reservation id=%d: %v", id, err)
		}
		return err
	}

	s.logger.Info("Delete: reservation id=%d removed", id)
	return nil
}
