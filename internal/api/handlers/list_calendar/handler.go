package list_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/Studio-ReservationService/internal/api/handlers"
	"github.com/m04kA/Studio-ReservationService/internal/domain"
	"github.com/m04kA/Studio-ReservationService/internal/service/calendar"
)

const (
	msgInvalidBucket = "некорректный параметр bucket, ожидается confirmed или pending"
	msgInvalidFrom   = "некорректный параметр from, ожидается YYYY-MM-DD"
	msgInvalidTo     = "некорректный параметр to, ожидается YYYY-MM-DD"
	msgInvalidRange      = "некорректный диапазон дат: from должен быть раньше to"
	msgConfigUnavailable = "конфигурация доступности не загружена"
)

type Handler struct {
	service        CalendarService
	configProvider ConfigProvider
	logger         Logger
}

func NewHandler(service CalendarService, configProvider ConfigProvider, logger Logger) *Handler {
	return &Handler{
		service:        service,
		configProvider: configProvider,
		logger:         logger,
	}
}

// Handle GET /api/v1/calendar?bucket=confirmed&from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bucket := domain.CalendarBucket(r.URL.Query().Get("bucket"))

	from, err := time.Parse(domain.DateFormat, r.URL.Query().Get("from"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	to, err := time.Parse(domain.DateFormat, r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	cfg := h.configProvider.Snapshot()
	if cfg == nil {
		h.logger.Error("GET /calendar - Availability config is not loaded")
		handlers.RespondError(w, http.StatusServiceUnavailable, msgConfigUnavailable)
		return
	}

	// from/to - календарные даты: границы суток берутся в зоне студии,
	// верхняя граница включает весь день to
	loc := cfg.Location()
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)

	entries, err := h.service.List(r.Context(), bucket, fromDay, toDay)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidBucket):
			h.logger.Warn("GET /calendar - Invalid bucket: %q", bucket)
			handlers.RespondBadRequest(w, msgInvalidBucket)

		case errors.Is(err, calendar.ErrInvalidRange):
			h.logger.Warn("GET /calendar - Invalid range: from=%s, to=%s",
				from.Format(domain.DateFormat), to.Format(domain.DateFormat))
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /calendar - Failed to list calendar: bucket=%s, error=%v", bucket, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ListCalendarResponse{
		Bucket:  string(bucket),
		From:    from.Format(domain.DateFormat),
		To:      to.Format(domain.DateFormat),
		Entries: entries,
	})
}
