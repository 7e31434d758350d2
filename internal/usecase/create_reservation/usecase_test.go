package create_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	"github.com/m04kA/Studio-ReservationService/internal/infra/storage/catalog"
	"github.com/m04kA/Studio-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeTxManager сериализует "транзакции" мьютексом, имитируя SERIALIZABLE
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeReservationRepo struct {
	mu           sync.Mutex
	nextID       int64
	reservations []*domain.Reservation
	supplements  map[int64][]domain.ReservationSupplement
	answers      map[int64][]domain.ClientAnswer
	history      []*domain.StatusHistory
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		supplements: make(map[int64][]domain.ReservationSupplement),
		answers:     make(map[int64][]domain.ClientAnswer),
	}
}

func (r *fakeReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	out := *res
	out.ID = r.nextID
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	r.reservations = append(r.reservations, &out)
	return &out, nil
}

func (r *fakeReservationRepo) AddSupplements(ctx context.Context, reservationID int64, supplements []domain.ReservationSupplement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.supplements[reservationID] = supplements
	return nil
}

func (r *fakeReservationRepo) AddAnswers(ctx context.Context, reservationID int64, answers []domain.ClientAnswer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.answers[reservationID] = answers
	return nil
}

func (r *fakeReservationRepo) AddStatusHistory(ctx context.Context, h *domain.StatusHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, h)
	return nil
}

func (r *fakeReservationRepo) FindOverlapping(ctx context.Context, start, end time.Time, excludeID *int64) (*int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.reservations {
		if excludeID != nil && res.ID == *excludeID {
			continue
		}
		if res.IsActive() && res.Overlaps(start, end) {
			id := res.ID
			return &id, nil
		}
	}
	return nil, nil
}

type fakeCatalogRepo struct {
	packs       map[int64]*domain.PackOffer
	decors      map[int64]*domain.Decor
	themes      map[int64]*domain.Theme
	supplements map[int64]*domain.SupplementService
}

func (r *fakeCatalogRepo) GetPackOffer(ctx context.Context, id int64) (*domain.PackOffer, error) {
	if p, ok := r.packs[id]; ok {
		return p, nil
	}
	return nil, catalog.ErrPackOfferNotFound
}

func (r *fakeCatalogRepo) GetDecor(ctx context.Context, id int64) (*domain.Decor, error) {
	if d, ok := r.decors[id]; ok {
		return d, nil
	}
	return nil, catalog.ErrDecorNotFound
}

func (r *fakeCatalogRepo) GetTheme(ctx context.Context, id int64) (*domain.Theme, error) {
	if t, ok := r.themes[id]; ok {
		return t, nil
	}
	return nil, catalog.ErrThemeNotFound
}

func (r *fakeCatalogRepo) GetSupplements(ctx context.Context, ids []int64) ([]*domain.SupplementService, error) {
	out := make([]*domain.SupplementService, 0, len(ids))
	for _, id := range ids {
		s, ok := r.supplements[id]
		if !ok {
			return nil, catalog.ErrSupplementNotFound
		}
		out = append(out, s)
	}
	return out, nil
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

type fakeIDGen struct {
	mu sync.Mutex
	n  int
}

func (g *fakeIDGen) NewConfirmationID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return "RSV-TEST" + string(rune('0'+g.n))
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

func testCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		packs: map[int64]*domain.PackOffer{
			1: {ID: 1, Name: "Standard", BasePrice: 200, DurationMinutes: 120, IsActive: true},
		},
		decors: map[int64]*domain.Decor{
			3: {ID: 3, Name: "Garden", IsActive: true},
			4: {ID: 4, Name: "Retired", IsActive: false},
		},
		themes: map[int64]*domain.Theme{
			5: {ID: 5, Name: "Birthday", IsActive: true},
		},
		supplements: map[int64]*domain.SupplementService{
			10: {ID: 10, Name: "Photographer", Price: 80, IsActive: true},
			11: {ID: 11, Name: "Catering", Price: 50, IsActive: true},
			12: {ID: 12, Name: "Gone", Price: 10, IsActive: false},
		},
	}
}

// 2026-03-02 is a Monday
var (
	mondayTen     = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	nextMondayTen = time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
)

func newTestUsecase(repo *fakeReservationRepo) *Usecase {
	return NewUsecase(
		repo,
		testCatalog(),
		&fakeConfigProvider{cfg: testConfig()},
		&fakeTxManager{},
		&fakeIDGen{},
		&fixedTime{now: mondayTen},
		nopLogger{},
	)
}

func validRequest() Request {
	return Request{
		CustomerName:  "Jean Dupont",
		CustomerEmail: "jean@example.com",
		CustomerPhone: "+33600000000",
		StartAt:       nextMondayTen,
		PackOfferID:   1,
	}
}

func TestExecute_CreatesPendingReservation(t *testing.T) {
	repo := newFakeReservationRepo()
	uc := newTestUsecase(repo)

	created, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, nextMondayTen, created.StartAt)
	assert.Equal(t, nextMondayTen.Add(2*time.Hour), created.EndAt)
	assert.Equal(t, 2, created.DurationHours)
	assert.Equal(t, 200.0, created.TotalPrice)
	assert.NotEmpty(t, created.ConfirmationID)
	assert.Nil(t, created.ConfirmedAt)

	// Строка журнала создания: старый статус отсутствует
	require.Len(t, repo.history, 1)
	assert.Nil(t, repo.history[0].OldStatus)
	assert.Equal(t, domain.StatusPending, repo.history[0].NewStatus)
}

func TestExecute_PriceSnapshotsSupplements(t *testing.T) {
	repo := newFakeReservationRepo()
	uc := newTestUsecase(repo)

	req := validRequest()
	req.SupplementIDs = []int64{10, 11}
	req.Answers = []AnswerInput{{Question: "Allergies?", Answer: "None"}}
	req.Metadata = json.RawMessage(`{"source":"web"}`)

	created, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 200 + 80 + 50
	assert.Equal(t, 330.0, created.TotalPrice)

	require.Len(t, repo.supplements[created.ID], 2)
	assert.Equal(t, 80.0, repo.supplements[created.ID][0].PriceAtBooking)
	assert.Equal(t, 50.0, repo.supplements[created.ID][1].PriceAtBooking)

	require.Len(t, repo.answers[created.ID], 1)
	assert.Equal(t, "Allergies?", repo.answers[created.ID][0].Question)
}

func TestExecute_CreatedAsConfirmed(t *testing.T) {
	repo := newFakeReservationRepo()
	uc := newTestUsecase(repo)

	req := validRequest()
	req.CreatedAsConfirmed = true
	req.AdminID = ptr.Ptr(int64(7))

	created, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, created.Status)
	require.NotNil(t, created.ConfirmedByAdminID)
	assert.Equal(t, int64(7), *created.ConfirmedByAdminID)
	assert.NotNil(t, created.ConfirmedAt)
}

func TestExecute_ConflictCarriesPartnerID(t *testing.T) {
	repo := newFakeReservationRepo()
	uc := newTestUsecase(repo)

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Пересечение наполовину: 11:00 при занятых 10:00-12:00
	req := validRequest()
	req.StartAt = nextMondayTen.Add(time.Hour)
	_, err = uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrConflict)

	var conflictErr *ConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, first.ID, conflictErr.WithReservationID)
}

func TestExecute_BackToBackDoesNotConflict(t *testing.T) {
	repo := newFakeReservationRepo()
	uc := newTestUsecase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Сессия впритык: 12:00-14:00 после 10:00-12:00
	req := validRequest()
	req.StartAt = nextMondayTen.Add(2 * time.Hour)
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ConcurrentCreation_ExactlyOneWinner(t *testing.T) {
	repo := newFakeReservationRepo()
	uc := newTestUsecase(repo)

	const attempts = 8
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validRequest())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var wins, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, repo.reservations, 1)
}

func TestExecute_SchedulingErrors(t *testing.T) {
	uc := newTestUsecase(newFakeReservationRepo())

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"non-hour boundary", func(r *Request) { r.StartAt = nextMondayTen.Add(30 * time.Minute) }, ErrNonHourBoundary},
		{"insufficient notice", func(r *Request) { r.StartAt = mondayTen.Add(3 * time.Hour) }, ErrInsufficientNotice},
		{"beyond advance window", func(r *Request) {
			r.StartAt = time.Date(2026, 6, 8, 10, 0, 0, 0, time.UTC)
		}, ErrBeyondAdvanceWindow},
		{"in the past", func(r *Request) { r.StartAt = mondayTen.AddDate(0, 0, -7) }, ErrInvalidDate},
		{"closed day", func(r *Request) {
			// 2026-03-08 is a Sunday
			r.StartAt = time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC)
		}, ErrOutsideBusinessHours},
		{"before opening", func(r *Request) {
			r.StartAt = time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
		}, ErrOutsideBusinessHours},
		{"session past closing", func(r *Request) {
			// Двухчасовая сессия с 17:00 кончается в 19:00
			r.StartAt = time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC)
		}, ErrOutsideBusinessHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_CatalogErrors(t *testing.T) {
	uc := newTestUsecase(newFakeReservationRepo())

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"unknown pack", func(r *Request) { r.PackOfferID = 42 }, ErrPackOfferNotFound},
		{"unknown decor", func(r *Request) { r.DecorID = ptr.Ptr(int64(99)) }, ErrDecorNotFound},
		{"inactive decor", func(r *Request) { r.DecorID = ptr.Ptr(int64(4)) }, ErrInvalidInput},
		{"unknown theme", func(r *Request) { r.ThemeID = ptr.Ptr(int64(99)) }, ErrThemeNotFound},
		{"unknown supplement", func(r *Request) { r.SupplementIDs = []int64{10, 99} }, ErrSupplementNotFound},
		{"inactive supplement", func(r *Request) { r.SupplementIDs = []int64{12} }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_InputValidation(t *testing.T) {
	uc := newTestUsecase(newFakeReservationRepo())

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing name", func(r *Request) { r.CustomerName = "  " }},
		{"missing email", func(r *Request) { r.CustomerEmail = "" }},
		{"invalid email", func(r *Request) { r.CustomerEmail = "not-an-email" }},
		{"missing phone", func(r *Request) { r.CustomerPhone = "" }},
		{"theme and custom theme together", func(r *Request) {
			r.ThemeID = ptr.Ptr(int64(5))
			r.CustomTheme = ptr.Ptr("Pirates")
		}},
		{"confirmed without admin", func(r *Request) { r.CreatedAsConfirmed = true }},
		{"empty answer question", func(r *Request) { r.Answers = []AnswerInput{{Question: " ", Answer: "x"}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
