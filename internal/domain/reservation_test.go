package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservation_Overlaps(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	r := &Reservation{StartAt: base, EndAt: base.Add(2 * time.Hour)} // 10:00-12:00

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		overlaps bool
	}{
		{"identical interval", base, base.Add(2 * time.Hour), true},
		{"fully inside", base.Add(30 * time.Minute), base.Add(time.Hour), true},
		{"covers reservation", base.Add(-time.Hour), base.Add(3 * time.Hour), true},
		{"overlaps start", base.Add(-time.Hour), base.Add(time.Hour), true},
		{"overlaps end", base.Add(time.Hour), base.Add(3 * time.Hour), true},
		{"back-to-back before", base.Add(-2 * time.Hour), base, false},
		{"back-to-back after", base.Add(2 * time.Hour), base.Add(4 * time.Hour), false},
		{"fully before", base.Add(-3 * time.Hour), base.Add(-time.Hour), false},
		{"fully after", base.Add(3 * time.Hour), base.Add(5 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, r.Overlaps(tt.start, tt.end))
		})
	}
}

func TestReservation_IsActive(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusPending}).IsActive())
	assert.True(t, (&Reservation{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Reservation{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Reservation{Status: StatusRejected}).IsActive())
	assert.False(t, (&Reservation{Status: StatusCompleted}).IsActive())
}

func TestCalendarBucket_Statuses(t *testing.T) {
	assert.Equal(t, []ReservationStatus{StatusConfirmed, StatusCompleted}, BucketConfirmed.Statuses())
	assert.Equal(t, []ReservationStatus{StatusPending}, BucketPending.Statuses())
	assert.Nil(t, CalendarBucket("unknown").Statuses())
}

func TestTotalPrice(t *testing.T) {
	pack := &PackOffer{BasePrice: 200}

	assert.Equal(t, 200.0, TotalPrice(pack, nil))

	supplements := []*SupplementService{
		{ID: 1, Price: 80},
		{ID: 2, Price: 50},
	}
	assert.Equal(t, 330.0, TotalPrice(pack, supplements))
}

func TestPackOffer_WholeHours(t *testing.T) {
	assert.True(t, (&PackOffer{DurationMinutes: 120}).IsWholeHours())
	assert.Equal(t, 2, (&PackOffer{DurationMinutes: 120}).DurationHours())
	assert.False(t, (&PackOffer{DurationMinutes: 90}).IsWholeHours())
	assert.False(t, (&PackOffer{DurationMinutes: 0}).IsWholeHours())
}
