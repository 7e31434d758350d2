package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	"github.com/m04kA/Studio-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeConfigRepo struct {
	stored  *domain.AvailabilityConfig
	getErr  error
	updates int
}

func (r *fakeConfigRepo) Get(ctx context.Context) (*domain.AvailabilityConfig, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.stored, nil
}

func (r *fakeConfigRepo) Update(ctx context.Context, cfg *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error) {
	r.updates++
	out := *cfg
	out.UpdatedAt = time.Now()
	r.stored = &out
	return &out, nil
}

func validConfig() *domain.AvailabilityConfig {
	return &domain.AvailabilityConfig{
		Timezone: "Europe/Paris",
		BusinessHours: domain.WeekSchedule{
			Monday:  &domain.DayHours{Start: "09:00", End: "18:00"},
			Tuesday: &domain.DayHours{Start: "09:00", End: "18:00"},
			Friday:  &domain.DayHours{Start: "10:00", End: "20:00"},
		},
		SlotDurationMinutes: 60,
		AdvanceBookingDays:  90,
		MinimumNoticeDays:   2,
	}
}

func TestService_LoadAndSnapshot(t *testing.T) {
	repo := &fakeConfigRepo{stored: validConfig()}
	svc := NewService(repo, nopLogger{})

	assert.Nil(t, svc.Snapshot())

	require.NoError(t, svc.Load(context.Background()))

	snap := svc.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, "Europe/Paris", snap.Timezone)
	assert.Equal(t, 60, snap.SlotDurationMinutes)
}

func TestService_Load_RejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.BusinessHours.Monday = &domain.DayHours{Start: "09:30", End: "18:00"}

	svc := NewService(&fakeConfigRepo{stored: cfg}, nopLogger{})
	err := svc.Load(context.Background())
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, svc.Snapshot())
}

func TestService_Update_PartialApply(t *testing.T) {
	repo := &fakeConfigRepo{stored: validConfig()}
	svc := NewService(repo, nopLogger{})
	require.NoError(t, svc.Load(context.Background()))

	updated, err := svc.Update(context.Background(), domain.AvailabilityConfigUpdate{
		MinimumNoticeDays: ptr.Ptr(5),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, updated.MinimumNoticeDays)
	// Остальные поля сохранены
	assert.Equal(t, "Europe/Paris", updated.Timezone)
	assert.Equal(t, 90, updated.AdvanceBookingDays)
	require.NotNil(t, updated.BusinessHours.Monday)
	assert.Equal(t, "09:00", updated.BusinessHours.Monday.Start.String())

	// Новый снапшот опубликован
	assert.Equal(t, 5, svc.Snapshot().MinimumNoticeDays)
	assert.Equal(t, 1, repo.updates)
}

func TestService_Update_ValidationBlocksPublish(t *testing.T) {
	repo := &fakeConfigRepo{stored: validConfig()}
	svc := NewService(repo, nopLogger{})
	require.NoError(t, svc.Load(context.Background()))

	tests := []struct {
		name string
		upd  domain.AvailabilityConfigUpdate
	}{
		{"unknown timezone", domain.AvailabilityConfigUpdate{Timezone: ptr.Ptr("Mars/Olympus")}},
		{"slot duration below minimum", domain.AvailabilityConfigUpdate{SlotDurationMinutes: ptr.Ptr(30)}},
		{"slot duration not whole hours", domain.AvailabilityConfigUpdate{SlotDurationMinutes: ptr.Ptr(90)}},
		{"advance window too large", domain.AvailabilityConfigUpdate{AdvanceBookingDays: ptr.Ptr(400)}},
		{"negative notice", domain.AvailabilityConfigUpdate{MinimumNoticeDays: ptr.Ptr(-1)}},
		{"start after end", domain.AvailabilityConfigUpdate{
			BusinessHours: &domain.WeekSchedule{
				Monday: &domain.DayHours{Start: "18:00", End: "09:00"},
			},
		}},
		{"half-hour boundary", domain.AvailabilityConfigUpdate{
			BusinessHours: &domain.WeekSchedule{
				Monday: &domain.DayHours{Start: "09:00", End: "17:30"},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tt.upd)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	// Ни одно невалидное обновление не дошло до хранилища и снапшота
	assert.Equal(t, 0, repo.updates)
	assert.Equal(t, 2, svc.Snapshot().MinimumNoticeDays)
}

func TestService_Update_SnapshotIsImmutable(t *testing.T) {
	repo := &fakeConfigRepo{stored: validConfig()}
	svc := NewService(repo, nopLogger{})
	require.NoError(t, svc.Load(context.Background()))

	before := svc.Snapshot()

	_, err := svc.Update(context.Background(), domain.AvailabilityConfigUpdate{
		BusinessHours: &domain.WeekSchedule{
			Monday: &domain.DayHours{Start: "08:00", End: "16:00"},
		},
	})
	require.NoError(t, err)

	// Старый снапшот не затронут обновлением
	require.NotNil(t, before.BusinessHours.Monday)
	assert.Equal(t, "09:00", before.BusinessHours.Monday.Start.String())
	require.NotNil(t, before.BusinessHours.Friday)

	after := svc.Snapshot()
	assert.Equal(t, "08:00", after.BusinessHours.Monday.Start.String())
	assert.Nil(t, after.BusinessHours.Friday)
}
