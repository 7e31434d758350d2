package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	"github.com/m04kA/Studio-ReservationService/internal/infra/storage/catalog"
)

// Usecase создание брони с атомарной проверкой пересечений
type Usecase struct {
	reservationRepo ReservationRepository
	catalogRepo     CatalogRepository
	configProvider  ConfigProvider
	txManager       TransactionManager
	idGenerator     ConfirmationIDGenerator
	timeProvider    TimeProvider
	logger          Logger
}

// NewUsecase создает новый экземпляр Usecase
func NewUsecase(
	reservationRepo ReservationRepository,
	catalogRepo CatalogRepository,
	configProvider ConfigProvider,
	txManager TransactionManager,
	idGenerator ConfirmationIDGenerator,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		reservationRepo: reservationRepo,
		catalogRepo:     catalogRepo,
		configProvider:  configProvider,
		txManager:       txManager,
		idGenerator:     idGenerator,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет создание брони
func (uc *Usecase) Execute(ctx context.Context, req Request) (*domain.Reservation, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Снапшот конфигурации доступности
	cfg := uc.configProvider.Snapshot()
	if cfg == nil {
		uc.logger.Error("[CreateReservation] Availability config is not loaded")
		return nil, ErrConfigUnavailable
	}

	loc := cfg.Location()
	now := uc.timeProvider.Now().In(loc)

	// 3. Проверка пакета: существует, активен, длительность кратна часу
	pack, err := uc.catalogRepo.GetPackOffer(ctx, req.PackOfferID)
	if err != nil {
		if errors.Is(err, catalog.ErrPackOfferNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrPackOfferNotFound, req.PackOfferID)
		}
		uc.logger.Error("[CreateReservation] Failed to get pack offer %d: %v", req.PackOfferID, err)
		return nil, fmt.Errorf("%w: failed to get pack offer", ErrInternal)
	}
	if !pack.IsActive || !pack.IsWholeHours() {
		return nil, fmt.Errorf("%w: id=%d", ErrPackNotBookable, req.PackOfferID)
	}
	durationHours := pack.DurationHours()

	// 4. Выравнивание по границе часа
	start := req.StartAt.In(loc)
	if start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		return nil, fmt.Errorf("%w: got %s", ErrNonHourBoundary, start.Format("15:04"))
	}
	end := start.Add(time.Duration(durationHours) * time.Hour)

	// 5. Проверка даты относительно текущего момента
	if start.Before(now) {
		return nil, fmt.Errorf("%w: start is in the past", ErrInvalidDate)
	}
	if !withinAdvanceWindow(start, now, cfg.AdvanceBookingDays, loc) {
		return nil, fmt.Errorf("%w: limit is %d days", ErrBeyondAdvanceWindow, cfg.AdvanceBookingDays)
	}
	if !satisfiesNotice(start, now, cfg.MinimumNoticeDays, loc) {
		return nil, fmt.Errorf("%w: at least %d days required", ErrInsufficientNotice, cfg.MinimumNoticeDays)
	}

	// 6. Интервал должен целиком попадать в рабочие часы дня
	if !fitsBusinessHours(start, durationHours, cfg, loc) {
		return nil, fmt.Errorf("%w: %s - %s", ErrOutsideBusinessHours, start.Format("15:04"), end.Format("15:04"))
	}

	// 7. Проверка выбранных позиций каталога
	supplements, err := uc.resolveCatalogSelections(ctx, req)
	if err != nil {
		return nil, err
	}

	// 8. Цена фиксируется на момент бронирования
	totalPrice := domain.TotalPrice(pack, supplements)

	status := domain.StatusPending
	var confirmedByAdminID *int64
	var confirmedAt *time.Time
	if req.CreatedAsConfirmed {
		status = domain.StatusConfirmed
		confirmedByAdminID = req.AdminID
		confirmedAtVal := now
		confirmedAt = &confirmedAtVal
	}

	reservation := &domain.Reservation{
		ConfirmationID: uc.idGenerator.NewConfirmationID(),
		Status:         status,
		StartAt:        start,
		EndAt:          end,
		DurationHours:  durationHours,
		Timezone:       cfg.Timezone,

		DecorID:     req.DecorID,
		PackOfferID: req.PackOfferID,
		ThemeID:     req.ThemeID,
		CustomTheme: req.CustomTheme,

		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),

		Notes:    req.Notes,
		Metadata: req.Metadata,

		TotalPrice: totalPrice,

		AssignedAdminID:    req.AdminID,
		ConfirmedByAdminID: confirmedByAdminID,
		ConfirmedAt:        confirmedAt,
	}

	// 9. Проверка пересечений и запись выполняются одной атомарной единицей
	var created *domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		conflictID, err := uc.reservationRepo.FindOverlapping(txCtx, start, end, nil)
		if err != nil {
			return fmt.Errorf("%w: failed to check overlaps: %w", ErrInternal, err)
		}
		if conflictID != nil {
			return &ConflictError{WithReservationID: *conflictID}
		}

		created, err = uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		if len(supplements) > 0 {
			rows := make([]domain.ReservationSupplement, 0, len(supplements))
			for _, s := range supplements {
				rows = append(rows, domain.ReservationSupplement{
					ReservationID:  created.ID,
					SupplementID:   s.ID,
					PriceAtBooking: s.Price,
				})
			}
			if err := uc.reservationRepo.AddSupplements(txCtx, created.ID, rows); err != nil {
				return fmt.Errorf("%w: failed to add supplements: %w", ErrInternal, err)
			}
			created.Supplements = rows
		}

		if len(req.Answers) > 0 {
			answers := make([]domain.ClientAnswer, 0, len(req.Answers))
			for _, a := range req.Answers {
				answers = append(answers, domain.ClientAnswer{
					ReservationID: created.ID,
					Question:      a.Question,
					Answer:        a.Answer,
				})
			}
			if err := uc.reservationRepo.AddAnswers(txCtx, created.ID, answers); err != nil {
				return fmt.Errorf("%w: failed to add answers: %w", ErrInternal, err)
			}
			created.Answers = answers
		}

		history := &domain.StatusHistory{
			ReservationID: created.ID,
			OldStatus:     nil,
			NewStatus:     created.Status,
			ChangedAt:     now,
		}
		if err := uc.reservationRepo.AddStatusHistory(txCtx, history); err != nil {
			return fmt.Errorf("%w: failed to add status history: %w", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, err
		}
		uc.logger.Error("[CreateReservation] Transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
	}

	uc.logger.Info("[CreateReservation] Created reservation %d (%s) for %s - %s",
		created.ID, created.ConfirmationID, start.Format(time.RFC3339), end.Format(time.RFC3339))

	return created, nil
}

// resolveCatalogSelections проверяет выбранные декор, тему и доплаты
func (uc *Usecase) resolveCatalogSelections(ctx context.Context, req Request) ([]*domain.SupplementService, error) {
	if req.DecorID != nil {
		decor, err := uc.catalogRepo.GetDecor(ctx, *req.DecorID)
		if err != nil {
			if errors.Is(err, catalog.ErrDecorNotFound) {
				return nil, fmt.Errorf("%w: id=%d", ErrDecorNotFound, *req.DecorID)
			}
			uc.logger.Error("[CreateReservation] Failed to get decor %d: %v", *req.DecorID, err)
			return nil, fmt.Errorf("%w: failed to get decor", ErrInternal)
		}
		if !decor.IsActive {
			return nil, fmt.Errorf("%w: decor %d is not active", ErrInvalidInput, *req.DecorID)
		}
	}

	if req.ThemeID != nil {
		theme, err := uc.catalogRepo.GetTheme(ctx, *req.ThemeID)
		if err != nil {
			if errors.Is(err, catalog.ErrThemeNotFound) {
				return nil, fmt.Errorf("%w: id=%d", ErrThemeNotFound, *req.ThemeID)
			}
			uc.logger.Error("[CreateReservation] Failed to get theme %d: %v", *req.ThemeID, err)
			return nil, fmt.Errorf("%w: failed to get theme", ErrInternal)
		}
		if !theme.IsActive {
			return nil, fmt.Errorf("%w: theme %d is not active", ErrInvalidInput, *req.ThemeID)
		}
	}

	if len(req.SupplementIDs) == 0 {
		return nil, nil
	}

	supplements, err := uc.catalogRepo.GetSupplements(ctx, req.SupplementIDs)
	if err != nil {
		if errors.Is(err, catalog.ErrSupplementNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrSupplementNotFound, req.SupplementIDs)
		}
		uc.logger.Error("[CreateReservation] Failed to get supplements %v: %v", req.SupplementIDs, err)
		return nil, fmt.Errorf("%w: failed to get supplements", ErrInternal)
	}
	for _, s := range supplements {
		if !s.IsActive {
			return nil, fmt.Errorf("%w: supplement %d is not active", ErrInvalidInput, s.ID)
		}
	}

	return supplements, nil
}
