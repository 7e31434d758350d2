package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/Studio-ReservationService/internal/api/handlers"
	"github.com/m04kA/Studio-ReservationService/internal/api/middleware"
	resmodels "github.com/m04kA/Studio-ReservationService/internal/service/reservations/models"
	createReservation "github.com/m04kA/Studio-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgPackOfferNotFound    = "пакет не найден"
	msgPackNotBookable      = "пакет недоступен для бронирования"
	msgDecorNotFound        = "декорация не найдена"
	msgThemeNotFound        = "тема не найдена"
	msgSupplementNotFound   = "доплата не найдена"
	msgSlotConflict         = "выбранный временной слот уже занят"
	msgInsufficientNotice   = "не соблюден минимальный срок предварительной записи"
	msgBeyondAdvanceWindow  = "дата за пределами окна бронирования"
	msgOutsideBusinessHours = "интервал за пределами рабочих часов"
	msgNonHourBoundary      = "время начала должно быть кратно целому часу"
	msgInvalidDate          = "некорректная дата бронирования"
	msgConfigUnavailable    = "конфигурация доступности не загружена"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Авторизация необязательна: заголовок нужен только для создания
	// брони сразу в статусе confirmed
	adminID := middleware.OptionalAdminID(r)

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(adminID))
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrConflict):
			h.logger.Warn("POST /reservations - Slot conflict: start_at=%s, error=%v", req.StartAt, err)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createReservation.ErrPackOfferNotFound):
			h.logger.Warn("POST /reservations - Pack offer not found: pack_offer_id=%d", req.PackOfferID)
			handlers.RespondNotFound(w, msgPackOfferNotFound)

		case errors.Is(err, createReservation.ErrPackNotBookable):
			h.logger.Warn("POST /reservations - Pack not bookable: pack_offer_id=%d", req.PackOfferID)
			handlers.RespondBadRequest(w, msgPackNotBookable)

		case errors.Is(err, createReservation.ErrDecorNotFound):
			h.logger.Warn("POST /reservations - Decor not found: %v", err)
			handlers.RespondNotFound(w, msgDecorNotFound)

		case errors.Is(err, createReservation.ErrThemeNotFound):
			h.logger.Warn("POST /reservations - Theme not found: %v", err)
			handlers.RespondNotFound(w, msgThemeNotFound)

		case errors.Is(err, createReservation.ErrSupplementNotFound):
			h.logger.Warn("POST /reservations - Supplement not found: %v", err)
			handlers.RespondNotFound(w, msgSupplementNotFound)

		case errors.Is(err, createReservation.ErrInsufficientNotice):
			h.logger.Warn("POST /reservations - Insufficient notice: start_at=%s", req.StartAt)
			handlers.RespondBadRequest(w, msgInsufficientNotice)

		case errors.Is(err, createReservation.ErrBeyondAdvanceWindow):
			h.logger.Warn("POST /reservations - Beyond advance window: start_at=%s", req.StartAt)
			handlers.RespondBadRequest(w, msgBeyondAdvanceWindow)

		case errors.Is(err, createReservation.ErrOutsideBusinessHours):
			h.logger.Warn("POST /reservations - Outside business hours: start_at=%s", req.StartAt)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createReservation.ErrNonHourBoundary):
			h.logger.Warn("POST /reservations - Non-hour boundary: start_at=%s", req.StartAt)
			handlers.RespondBadRequest(w, msgNonHourBoundary)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: start_at=%s", req.StartAt)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrConfigUnavailable):
			h.logger.Error("POST /reservations - Availability config is not loaded")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgConfigUnavailable)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, confirmation_id=%s",
		result.ID, result.ConfirmationID)
	handlers.RespondJSON(w, http.StatusCreated, resmodels.FromDomainReservation(result))
}
