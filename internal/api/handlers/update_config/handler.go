package update_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/Studio-ReservationService/internal/api/handlers"
	"github.com/m04kA/Studio-ReservationService/internal/api/middleware"
	"github.com/m04kA/Studio-ReservationService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidConfig      = "некорректная конфигурация доступности"
	msgUnauthorized       = "требуется авторизация администратора"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	upd, err := req.ToDomainUpdate()
	if err != nil {
		h.logger.Warn("PUT /config - Failed to parse business hours: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	cfg, err := h.service.Update(r.Context(), upd)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidConfig):
			h.logger.Warn("PUT /config - Invalid config: admin_id=%d, error=%v", adminID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /config - Failed to update config: admin_id=%d, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /config - Config updated: admin_id=%d", adminID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainConfig(cfg))
}
