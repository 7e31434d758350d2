package list_calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	"github.com/m04kA/Studio-ReservationService/internal/service/calendar"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCalendarService struct {
	gotBucket domain.CalendarBucket
	gotFrom   time.Time
	gotTo     time.Time
	entries   []calendar.Entry
	err       error
}

func (s *fakeCalendarService) List(ctx context.Context, bucket domain.CalendarBucket, from, to time.Time) ([]calendar.Entry, error) {
	s.gotBucket = bucket
	s.gotFrom = from
	s.gotTo = to
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

type fakeConfigProvider struct {
	cfg *domain.AvailabilityConfig
}

func (p *fakeConfigProvider) Snapshot() *domain.AvailabilityConfig {
	return p.cfg
}

func newRequest(query string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/api/v1/calendar?"+query, nil)
}

func TestHandle_RangeResolvedInVenueTimezone(t *testing.T) {
	svc := &fakeCalendarService{entries: []calendar.Entry{}}
	cfg := &domain.AvailabilityConfig{Timezone: "America/New_York"}
	h := NewHandler(svc, &fakeConfigProvider{cfg: cfg}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("bucket=confirmed&from=2026-03-09&to=2026-03-09"))
	require.Equal(t, http.StatusOK, rec.Code)

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Границы суток берутся по зоне студии, а не по UTC,
	// и верхняя граница включает весь день to
	assert.True(t, svc.gotFrom.Equal(time.Date(2026, 3, 9, 0, 0, 0, 0, loc)))
	assert.True(t, svc.gotTo.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, loc)))
	assert.Equal(t, domain.BucketConfirmed, svc.gotBucket)
}

func TestHandle_InvalidDatesRejected(t *testing.T) {
	svc := &fakeCalendarService{}
	h := NewHandler(svc, &fakeConfigProvider{cfg: &domain.AvailabilityConfig{Timezone: "UTC"}}, nopLogger{})

	for _, query := range []string{
		"bucket=confirmed&from=bad&to=2026-03-09",
		"bucket=confirmed&from=2026-03-09&to=bad",
	} {
		rec := httptest.NewRecorder()
		h.Handle(rec, newRequest(query))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestHandle_ConfigUnavailable(t *testing.T) {
	h := NewHandler(&fakeCalendarService{}, &fakeConfigProvider{}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("bucket=confirmed&from=2026-03-09&to=2026-03-09"))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
