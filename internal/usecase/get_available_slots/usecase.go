package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	"github.com/m04kA/Studio-ReservationService/internal/infra/storage/catalog"
)

// Usecase получение доступных слотов на дату для выбранного пакета
type Usecase struct {
	reservationRepo ReservationRepository
	catalogRepo     CatalogRepository
	configProvider  ConfigProvider
	timeProvider    TimeProvider
	logger          Logger
}

// NewUsecase создает новый экземпляр Usecase
func NewUsecase(
	reservationRepo ReservationRepository,
	catalogRepo CatalogRepository,
	configProvider ConfigProvider,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		reservationRepo: reservationRepo,
		catalogRepo:     catalogRepo,
		configProvider:  configProvider,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет получение доступных слотов
func (uc *Usecase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Снапшот конфигурации доступности
	cfg := uc.configProvider.Snapshot()
	if cfg == nil {
		uc.logger.Error("[GetAvailableSlots] Availability config is not loaded")
		return nil, ErrConfigUnavailable
	}

	loc := cfg.Location()
	now := uc.timeProvider.Now().In(loc)

	// Дата запроса - календарная дата, а не момент времени: переносим её
	// в зону студии покомпонентно, иначе при отрицательном смещении зоны
	// полночь UTC уезжает на предыдущий день
	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)

	// 3. Проверка пакета: существует, активен, длительность кратна часу
	pack, err := uc.catalogRepo.GetPackOffer(ctx, req.PackOfferID)
	if err != nil {
		if errors.Is(err, catalog.ErrPackOfferNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrPackOfferNotFound, req.PackOfferID)
		}
		uc.logger.Error("[GetAvailableSlots] Failed to get pack offer %d: %v", req.PackOfferID, err)
		return nil, fmt.Errorf("%w: failed to get pack offer", ErrInternal)
	}
	if !pack.IsActive || !pack.IsWholeHours() {
		return nil, fmt.Errorf("%w: id=%d", ErrPackNotBookable, req.PackOfferID)
	}
	durationHours := pack.DurationHours()

	// 4. Проверка даты относительно текущего момента
	if isDateInPast(day, now, loc) {
		return nil, fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}
	if !withinAdvanceWindow(day, now, cfg.AdvanceBookingDays, loc) {
		return nil, fmt.Errorf("%w: limit is %d days", ErrBeyondAdvanceWindow, cfg.AdvanceBookingDays)
	}

	resp := &Response{
		Date:          req.Date,
		PackOfferID:   req.PackOfferID,
		DurationHours: durationHours,
		Slots:         []domain.Slot{},
	}

	// 5. Нарушение minimumNoticeDays не ошибка: на такую дату просто нет слотов
	if !satisfiesNotice(day, now, cfg.MinimumNoticeDays, loc) {
		return resp, nil
	}

	// 6. Выходной день: пустой список
	hours := cfg.BusinessHours.ForWeekday(day.Weekday())
	if hours == nil {
		return resp, nil
	}

	// 7. Генерация кандидатов-слотов на день
	candidates := generateDaySlots(day, hours, cfg.SlotDurationMinutes, durationHours, loc)
	if len(candidates) == 0 {
		return resp, nil
	}

	// 8. Фильтрация по активным броням дня.
	// Берем брони с запасом в сутки с каждой стороны, чтобы учесть сессии,
	// начавшиеся накануне и заканчивающиеся в запрошенный день
	from := day.AddDate(0, 0, -1)
	to := day.AddDate(0, 0, 2)
	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationsFilter{
		Statuses:  domain.ActiveStatuses,
		StartFrom: &from,
		StartTo:   &to,
	})
	if err != nil {
		uc.logger.Error("[GetAvailableSlots] Failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations", ErrInternal)
	}

	resp.Slots = filterConflicting(candidates, reservations)

	return resp, nil
}
