package reschedule_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Studio-ReservationService/internal/api/handlers"
	"github.com/m04kA/Studio-ReservationService/internal/api/middleware"
	resmodels "github.com/m04kA/Studio-ReservationService/internal/service/reservations/models"
	rescheduleReservation "github.com/m04kA/Studio-ReservationService/internal/usecase/reschedule_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidReservationID = "некорректный идентификатор брони"
	msgReservationNotFound  = "бронь не найдена"
	msgReservationNotActive = "перенос возможен только для активной брони"
	msgSlotConflict         = "выбранный временной слот уже занят"
	msgInsufficientNotice   = "не соблюден минимальный срок предварительной записи"
	msgBeyondAdvanceWindow  = "дата за пределами окна бронирования"
	msgOutsideBusinessHours = "интервал за пределами рабочих часов"
	msgNonHourBoundary      = "границы интервала должны быть кратны целому часу"
	msgNonWholeHourDuration = "длительность интервала должна быть кратна целому часу"
	msgInvalidDate          = "некорректная дата переноса"
	msgConfigUnavailable    = "конфигурация доступности не загружена"
	msgUnauthorized         = "требуется авторизация администратора"
)

type Handler struct {
	useCase RescheduleReservationUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/schedule - Invalid reservation id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	adminID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req RescheduleReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), rescheduleReservation.Request{
		ReservationID: reservationID,
		NewStartAt:    req.NewStartAt,
		NewEndAt:      req.NewEndAt,
		AdminID:       adminID,
	})
	if err != nil {
		switch {
		case errors.Is(err, rescheduleReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/schedule - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, rescheduleReservation.ErrReservationNotActive):
			h.logger.Warn("PATCH /reservations/{id}/schedule - Reservation not active: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgReservationNotActive)

		case errors.Is(err, rescheduleReservation.ErrConflict):
			h.logger.Warn("PATCH /reservations/{id}/schedule - Slot conflict: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, rescheduleReservation.ErrInsufficientNotice):
			h.logger.Warn("PATCH /reservations/{id}/schedule - Insufficient notice: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInsufficientNotice)

		case errors.Is(err, rescheduleReservation.ErrBeyondAdvanceWindow):
			h.logger.Warn("PATCH /reservations/{id}/schedule - Beyond advance window: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgBeyondAdvanceWindow)

		case errors.Is(err, rescheduleReservation.ErrOutsideBusinessHours):
			h.logger.Warn("PATCH /reservations/{id}/schedule - Outside business hours: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, rescheduleReservation.ErrNonHourBoundary):
			h.logger.Warn("PATCH /reservations/{id}/schedule - Non-hour boundary: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgNonHourBoundary)

		case errors.Is(err, rescheduleReservation.ErrNonWholeHourDuration):
			h.logger.Warn("PATCH /reservations/{id}/schedule - Non-whole-hour duration: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgNonWholeHourDuration)

		case errors.Is(err, rescheduleReservation.ErrInvalidDate):
			h.logger.Warn("PATCH /reservations/{id}/schedule - Invalid date: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, rescheduleReservation.ErrConfigUnavailable):
			h.logger.Error("PATCH /reservations/{id}/schedule - Availability config is not loaded")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgConfigUnavailable)

		case errors.Is(err, rescheduleReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /reservations/{id}/schedule - Failed to reschedule: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/schedule - Reservation rescheduled: reservation_id=%d, admin_id=%d",
		reservationID, adminID)
	handlers.RespondJSON(w, http.StatusOK, resmodels.FromDomainReservation(result))
}
