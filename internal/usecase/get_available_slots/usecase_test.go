package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	"github.com/m04kA/Studio-ReservationService/internal/infra/storage/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	listErr      error
}

func (r *fakeReservationRepo) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.reservations, nil
}

type fakeCatalogRepo struct {
	packs map[int64]*domain.PackOffer
}

func (r *fakeCatalogRepo) GetPackOffer(ctx context.Context, id int64) (*domain.PackOffer, error) {
	pack, ok := r.packs[id]
	if !ok {
		return nil, catalog.ErrPackOfferNotFound
	}
	return pack, nil
}

type fakeConfigProvider struct {
	cfg *domain.AvailabilityConfig
}

func (p *fakeConfigProvider) Snapshot() *domain.AvailabilityConfig {
	return p.cfg
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

func testConfig() *domain.AvailabilityConfig {
	return &domain.AvailabilityConfig{
		Timezone: "UTC",
		BusinessHours: domain.WeekSchedule{
			Monday:  &domain.DayHours{Start: "09:00", End: "18:00"},
			Tuesday: &domain.DayHours{Start: "09:00", End: "18:00"},
		},
		SlotDurationMinutes: 60,
		AdvanceBookingDays:  90,
		MinimumNoticeDays:   2,
	}
}

func newTestUsecase(resRepo *fakeReservationRepo, packs map[int64]*domain.PackOffer, now time.Time) *Usecase {
	return NewUsecase(
		resRepo,
		&fakeCatalogRepo{packs: packs},
		&fakeConfigProvider{cfg: testConfig()},
		&fixedTime{now: now},
		nopLogger{},
	)
}

// 2026-03-02 is a Monday
var (
	monday     = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	nextMonday = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	mondayTen  = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
)

func onePack() map[int64]*domain.PackOffer {
	return map[int64]*domain.PackOffer{
		1: {ID: 1, Name: "Standard", BasePrice: 200, DurationMinutes: 60, IsActive: true},
	}
}

func TestExecute_OpenDayWithoutReservations(t *testing.T) {
	uc := newTestUsecase(&fakeReservationRepo{}, onePack(), mondayTen)

	resp, err := uc.Execute(context.Background(), Request{Date: nextMonday, PackOfferID: 1})
	require.NoError(t, err)

	// 09:00..17:00 - девять часовых слотов
	require.Len(t, resp.Slots, 9)
	assert.Equal(t, time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC), resp.Slots[0].Start)
	assert.Equal(t, time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC), resp.Slots[0].End)
	assert.Equal(t, time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC), resp.Slots[8].Start)
	assert.Equal(t, time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC), resp.Slots[8].End)
	assert.Equal(t, 1, resp.DurationHours)
}

func TestExecute_BookedSlotsExcluded(t *testing.T) {
	booked := &domain.Reservation{
		Status:  domain.StatusConfirmed,
		StartAt: time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
	}
	uc := newTestUsecase(&fakeReservationRepo{reservations: []*domain.Reservation{booked}}, onePack(), mondayTen)

	resp, err := uc.Execute(context.Background(), Request{Date: nextMonday, PackOfferID: 1})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 7)
	for _, slot := range resp.Slots {
		assert.False(t, booked.Overlaps(slot.Start, slot.End),
			"slot %s must not overlap booked interval", slot.Start.Format("15:04"))
	}
	// Слот, заканчивающийся в 10:00, остается: интервалы полуоткрытые
	assert.Equal(t, time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC), resp.Slots[0].Start)
	// Следующий свободный начинается в 12:00
	assert.Equal(t, time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC), resp.Slots[1].Start)
}

func TestExecute_TerminalStatusesDoNotBlock(t *testing.T) {
	cancelled := &domain.Reservation{
		Status:  domain.StatusCancelled,
		StartAt: time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
	}
	uc := newTestUsecase(&fakeReservationRepo{reservations: []*domain.Reservation{cancelled}}, onePack(), mondayTen)

	resp, err := uc.Execute(context.Background(), Request{Date: nextMonday, PackOfferID: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 9)
}

func TestExecute_MultiHourPack(t *testing.T) {
	packs := map[int64]*domain.PackOffer{
		2: {ID: 2, Name: "Deluxe", BasePrice: 450, DurationMinutes: 180, IsActive: true},
	}
	uc := newTestUsecase(&fakeReservationRepo{}, packs, mondayTen)

	resp, err := uc.Execute(context.Background(), Request{Date: nextMonday, PackOfferID: 2})
	require.NoError(t, err)

	// Трехчасовая сессия: последний старт 15:00
	require.Len(t, resp.Slots, 7)
	last := resp.Slots[len(resp.Slots)-1]
	assert.Equal(t, time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC), last.Start)
	assert.Equal(t, time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC), last.End)
}

func TestExecute_NoticeViolationReturnsEmptySet(t *testing.T) {
	uc := newTestUsecase(&fakeReservationRepo{}, onePack(), mondayTen)

	// Сегодняшняя дата нарушает minimumNoticeDays=2: ошибки нет, слотов нет
	resp, err := uc.Execute(context.Background(), Request{Date: monday, PackOfferID: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ClosedDayReturnsEmptySet(t *testing.T) {
	uc := newTestUsecase(&fakeReservationRepo{}, onePack(), mondayTen)

	// 2026-03-08 - воскресенье, выходной
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), Request{Date: sunday, PackOfferID: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	uc := newTestUsecase(&fakeReservationRepo{}, onePack(), mondayTen)

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"unknown pack", Request{Date: nextMonday, PackOfferID: 42}, ErrPackOfferNotFound},
		{"date in past", Request{Date: monday.AddDate(0, 0, -7), PackOfferID: 1}, ErrInvalidDate},
		{"beyond advance window", Request{Date: monday.AddDate(0, 0, 120), PackOfferID: 1}, ErrBeyondAdvanceWindow},
		{"zero date", Request{PackOfferID: 1}, ErrInvalidInput},
		{"non-positive pack id", Request{Date: nextMonday}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_InactivePackNotBookable(t *testing.T) {
	packs := map[int64]*domain.PackOffer{
		1: {ID: 1, DurationMinutes: 60, IsActive: false},
		2: {ID: 2, DurationMinutes: 90, IsActive: true},
	}
	uc := newTestUsecase(&fakeReservationRepo{}, packs, mondayTen)

	_, err := uc.Execute(context.Background(), Request{Date: nextMonday, PackOfferID: 1})
	assert.ErrorIs(t, err, ErrPackNotBookable)

	// Пакет с длительностью не кратной часу тоже не бронируется
	_, err = uc.Execute(context.Background(), Request{Date: nextMonday, PackOfferID: 2})
	assert.ErrorIs(t, err, ErrPackNotBookable)
}

func TestExecute_MissingConfig(t *testing.T) {
	uc := NewUsecase(
		&fakeReservationRepo{},
		&fakeCatalogRepo{packs: onePack()},
		&fakeConfigProvider{cfg: nil},
		&fixedTime{now: mondayTen},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), Request{Date: nextMonday, PackOfferID: 1})
	assert.ErrorIs(t, err, ErrConfigUnavailable)
}

func TestExecute_NegativeOffsetTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Timezone = "America/New_York"

	uc := NewUsecase(
		&fakeReservationRepo{},
		&fakeCatalogRepo{packs: onePack()},
		&fakeConfigProvider{cfg: cfg},
		&fixedTime{now: mondayTen},
		nopLogger{},
	)

	// Дата запроса парсится из "2026-03-09" как полночь UTC; в Нью-Йорке этот
	// момент - еще вечер воскресенья. Слоты все равно должны строиться
	// для понедельника по зоне студии
	resp, err := uc.Execute(context.Background(), Request{Date: nextMonday, PackOfferID: 1})
	require.NoError(t, err)

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	require.Len(t, resp.Slots, 9)
	assert.True(t, resp.Slots[0].Start.Equal(time.Date(2026, 3, 9, 9, 0, 0, 0, loc)))
	assert.True(t, resp.Slots[8].End.Equal(time.Date(2026, 3, 9, 18, 0, 0, 0, loc)))
	for _, slot := range resp.Slots {
		assert.Equal(t, time.Monday, slot.Start.In(loc).Weekday())
	}
}
