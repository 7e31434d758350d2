package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/Studio-ReservationService/internal/infra/storage/reservation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	reservations map[int64]*domain.Reservation
	history      map[int64][]*domain.StatusHistory
	notes        map[int64][]*domain.Note
	noteID       int64
	deleted      []int64
}

func newFakeRepo(reservations ...*domain.Reservation) *fakeRepo {
	r := &fakeRepo{
		reservations: make(map[int64]*domain.Reservation),
		history:      make(map[int64][]*domain.StatusHistory),
		notes:        make(map[int64][]*domain.Note),
	}
	for _, res := range reservations {
		r.reservations[res.ID] = res
	}
	return r
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	out := *res
	return &out, nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id int64, upd reservationRepo.StatusUpdate) error {
	res, ok := r.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	res.Status = upd.Status
	if upd.ConfirmedByAdminID != nil {
		res.ConfirmedByAdminID = upd.ConfirmedByAdminID
	}
	if upd.ConfirmedAt != nil {
		res.ConfirmedAt = upd.ConfirmedAt
	}
	return nil
}

func (r *fakeRepo) AddStatusHistory(ctx context.Context, h *domain.StatusHistory) error {
	r.history[h.ReservationID] = append(r.history[h.ReservationID], h)
	return nil
}

func (r *fakeRepo) ListStatusHistory(ctx context.Context, reservationID int64) ([]*domain.StatusHistory, error) {
	return r.history[reservationID], nil
}

func (r *fakeRepo) AddNote(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	r.noteID++
	out := *n
	out.ID = r.noteID
	out.CreatedAt = time.Now()
	r.notes[n.ReservationID] = append(r.notes[n.ReservationID], &out)
	return &out, nil
}

func (r *fakeRepo) ListNotes(ctx context.Context, reservationID int64) ([]*domain.Note, error) {
	return r.notes[reservationID], nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.reservations[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(r.reservations, id)
	delete(r.history, id)
	delete(r.notes, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, fakeTxManager{}, nopLogger{})
}

func pastReservation(id int64, status domain.ReservationStatus) *domain.Reservation {
	start := time.Now().Add(-3 * time.Hour)
	return &domain.Reservation{
		ID:            id,
		Status:        status,
		StartAt:       start,
		EndAt:         start.Add(2 * time.Hour),
		DurationHours: 2,
		CustomerName:  "Jean Dupont",
	}
}

func futureReservation(id int64, status domain.ReservationStatus) *domain.Reservation {
	start := time.Now().Add(48 * time.Hour)
	return &domain.Reservation{
		ID:            id,
		Status:        status,
		StartAt:       start,
		EndAt:         start.Add(2 * time.Hour),
		DurationHours: 2,
		CustomerName:  "Jean Dupont",
	}
}

func TestChangeStatus_ConfirmStampsAdminAndTime(t *testing.T) {
	repo := newFakeRepo(futureReservation(1, domain.StatusPending))
	svc := newTestService(repo)

	result, err := svc.ChangeStatus(context.Background(), 1, domain.StatusConfirmed, nil, 7)
	require.NoError(t, err)

	assert.Equal(t, "confirmed", result.Status)
	require.NotNil(t, result.ConfirmedByAdminID)
	assert.Equal(t, int64(7), *result.ConfirmedByAdminID)
	assert.NotNil(t, result.ConfirmedAt)

	// Переход и строка журнала пишутся вместе
	require.Len(t, repo.history[1], 1)
	require.NotNil(t, repo.history[1][0].OldStatus)
	assert.Equal(t, domain.StatusPending, *repo.history[1][0].OldStatus)
	assert.Equal(t, domain.StatusConfirmed, repo.history[1][0].NewStatus)
}

func TestChangeStatus_HistoryAccumulates(t *testing.T) {
	repo := newFakeRepo(futureReservation(1, domain.StatusPending))
	svc := newTestService(repo)

	_, err := svc.ChangeStatus(context.Background(), 1, domain.StatusConfirmed, nil, 7)
	require.NoError(t, err)
	note := "client asked to cancel"
	_, err = svc.ChangeStatus(context.Background(), 1, domain.StatusCancelled, &note, 7)
	require.NoError(t, err)

	require.Len(t, repo.history[1], 2)
	assert.Equal(t, domain.StatusCancelled, repo.history[1][1].NewStatus)
	require.NotNil(t, repo.history[1][1].Notes)
	assert.Equal(t, note, *repo.history[1][1].Notes)
}

func TestChangeStatus_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		from domain.ReservationStatus
		to   domain.ReservationStatus
	}{
		{"pending to completed", domain.StatusPending, domain.StatusCompleted},
		{"confirmed to rejected", domain.StatusConfirmed, domain.StatusRejected},
		{"cancelled to confirmed", domain.StatusCancelled, domain.StatusConfirmed},
		{"completed to cancelled", domain.StatusCompleted, domain.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(pastReservation(1, tt.from))
			svc := newTestService(repo)

			_, err := svc.ChangeStatus(context.Background(), 1, tt.to, nil, 7)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			// Журнал не пополняется при отклоненном переходе
			assert.Empty(t, repo.history[1])
		})
	}
}

func TestChangeStatus_CompletionOnlyAfterSessionEnd(t *testing.T) {
	// Сессия еще идет
	repo := newFakeRepo(futureReservation(1, domain.StatusConfirmed))
	svc := newTestService(repo)

	_, err := svc.ChangeStatus(context.Background(), 1, domain.StatusCompleted, nil, 7)
	assert.ErrorIs(t, err, ErrCompletionTooEarly)

	// Сессия закончилась
	repo = newFakeRepo(pastReservation(2, domain.StatusConfirmed))
	svc = newTestService(repo)

	result, err := svc.ChangeStatus(context.Background(), 2, domain.StatusCompleted, nil, 7)
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
}

func TestChangeStatus_UnknownStatusAndMissingReservation(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.ChangeStatus(context.Background(), 1, "archived", nil, 7)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ChangeStatus(context.Background(), 1, domain.StatusConfirmed, nil, 7)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByID_ReturnsHistoryAndNotes(t *testing.T) {
	repo := newFakeRepo(futureReservation(1, domain.StatusPending))
	svc := newTestService(repo)

	_, err := svc.ChangeStatus(context.Background(), 1, domain.StatusConfirmed, nil, 7)
	require.NoError(t, err)
	_, err = svc.AddNote(context.Background(), 1, "prepared decor", 7)
	require.NoError(t, err)

	reservation, history, notes, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), reservation.ID)
	assert.Len(t, history, 1)
	require.Len(t, notes, 1)
	assert.Equal(t, "prepared decor", notes[0].NoteText)

	_, _, _, err = svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestAddNote_Validation(t *testing.T) {
	repo := newFakeRepo(futureReservation(1, domain.StatusPending))
	svc := newTestService(repo)

	_, err := svc.AddNote(context.Background(), 1, "   ", 7)
	assert.ErrorIs(t, err, ErrInvalidInput)

	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = svc.AddNote(context.Background(), 1, string(long), 7)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddNote(context.Background(), 42, "text", 7)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	note, err := svc.AddNote(context.Background(), 1, "  trimmed  ", 7)
	require.NoError(t, err)
	assert.Equal(t, "trimmed", note.NoteText)
	assert.Equal(t, int64(7), note.CreatedBy)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo(futureReservation(1, domain.StatusCancelled))
	svc := newTestService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deleted)

	// Повторное удаление: брони больше нет
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrReservationNotFound)
}
