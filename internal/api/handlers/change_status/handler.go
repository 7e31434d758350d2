package change_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Studio-ReservationService/internal/api/handlers"
	"github.com/m04kA/Studio-ReservationService/internal/api/middleware"
	"github.com/m04kA/Studio-ReservationService/internal/service/reservations"
	"github.com/m04kA/Studio-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidReservationID = "некорректный идентификатор брони"
	msgInvalidStatus        = "неизвестный статус брони"
	msgReservationNotFound  = "бронь не найдена"
	msgInvalidTransition    = "недопустимый переход статуса"
	msgCompletionTooEarly   = "сессия еще не закончилась"
	msgUnauthorized         = "требуется авторизация администратора"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid reservation id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	adminID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req ChangeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Unknown status %q", req.Status)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	result, err := h.service.ChangeStatus(r.Context(), reservationID, newStatus, req.Note, adminID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/status - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid transition: reservation_id=%d, new_status=%s, error=%v",
				reservationID, newStatus, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, reservations.ErrCompletionTooEarly):
			h.logger.Warn("PATCH /reservations/{id}/status - Completion too early: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgCompletionTooEarly)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /reservations/{id}/status - Failed to change status: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/status - Status changed: reservation_id=%d, new_status=%s, admin_id=%d",
		reservationID, newStatus, adminID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
