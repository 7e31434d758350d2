package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/api/handlers"
	"github.com/m04kA/Studio-ReservationService/internal/domain"
	getSlots "github.com/m04kA/Studio-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPackOfferID  = "некорректный параметр packOfferId"
	msgPackOfferNotFound   = "пакет не найден"
	msgPackNotBookable     = "пакет недоступен для бронирования"
	msgDateInPast          = "дата в прошлом"
	msgBeyondAdvanceWindow = "дата за пределами окна бронирования"
	msgConfigUnavailable   = "конфигурация доступности не загружена"
	msgInvalidRequest      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD&packOfferId=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	packOfferID, err := strconv.ParseInt(r.URL.Query().Get("packOfferId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid packOfferId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackOfferID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), getSlots.Request{
		Date:        date,
		PackOfferID: packOfferID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrPackOfferNotFound):
			h.logger.Warn("GET /slots - Pack offer not found: pack_offer_id=%d", packOfferID)
			handlers.RespondNotFound(w, msgPackOfferNotFound)

		case errors.Is(err, getSlots.ErrPackNotBookable):
			h.logger.Warn("GET /slots - Pack not bookable: pack_offer_id=%d", packOfferID)
			handlers.RespondBadRequest(w, msgPackNotBookable)

		case errors.Is(err, getSlots.ErrInvalidDate):
			h.logger.Warn("GET /slots - Date in past: date=%s", date.Format(domain.DateFormat))
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getSlots.ErrBeyondAdvanceWindow):
			h.logger.Warn("GET /slots - Beyond advance window: date=%s", date.Format(domain.DateFormat))
			handlers.RespondBadRequest(w, msgBeyondAdvanceWindow)

		case errors.Is(err, getSlots.ErrConfigUnavailable):
			h.logger.Error("GET /slots - Availability config is not loaded")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgConfigUnavailable)

		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /slots - Failed to get slots: date=%s, pack_offer_id=%d, error=%v",
				date.Format(domain.DateFormat), packOfferID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
