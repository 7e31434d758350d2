package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	"github.com/m04kA/Studio-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Studio-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/Studio-ReservationService/pkg/types"
)

// Конфигурация хранится единственной строкой с фиксированным id
const configRowID = 1

// Repository репозиторий конфигурации доступности (единственная строка)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает конфигурацию доступности
func (r *Repository) Get(ctx context.Context) (*domain.AvailabilityConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"timezone",
		"business_hours",
		"slot_duration_minutes",
		"advance_booking_days",
		"minimum_notice_days",
		"updated_at",
	).
		From("availability_config").
		Where(squirrel.Eq{"id": configRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.AvailabilityConfig
	var hoursRaw []byte

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.Timezone,
		&hoursRaw,
		&cfg.SlotDurationMinutes,
		&cfg.AdvanceBookingDays,
		&cfg.MinimumNoticeDays,
		&cfg.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	schedule, err := decodeWeekSchedule(hoursRaw)
	if err != nil {
		return nil, err
	}
	cfg.BusinessHours = schedule

	return &cfg, nil
}

// Update перезаписывает единственную строку конфигурации
func (r *Repository) Update(ctx context.Context, cfg *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	hoursRaw, err := encodeWeekSchedule(cfg.BusinessHours)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Update("availability_config").
		Set("timezone", cfg.Timezone).
		Set("business_hours", hoursRaw).
		Set("slot_duration_minutes", cfg.SlotDurationMinutes).
		Set("advance_booking_days", cfg.AdvanceBookingDays).
		Set("minimum_notice_days", cfg.MinimumNoticeDays).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": configRowID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&cfg.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return cfg, nil
}

// dayHoursJSON формат хранения интервала дня в jsonb
type dayHoursJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// weekScheduleJSON формат хранения расписания недели в jsonb;
// отсутствующий день = закрыто
type weekScheduleJSON struct {
	Monday    *dayHoursJSON `json:"monday,omitempty"`
	Tuesday   *dayHoursJSON `json:"tuesday,omitempty"`
	Wednesday *dayHoursJSON `json:"wednesday,omitempty"`
	Thursday  *dayHoursJSON `json:"thursday,omitempty"`
	Friday    *dayHoursJSON `json:"friday,omitempty"`
	Saturday  *dayHoursJSON `json:"saturday,omitempty"`
	Sunday    *dayHoursJSON `json:"sunday,omitempty"`
}

func encodeWeekSchedule(w domain.WeekSchedule) ([]byte, error) {
	enc := weekScheduleJSON{
		Monday:    encodeDay(w.Monday),
		Tuesday:   encodeDay(w.Tuesday),
		Wednesday: encodeDay(w.Wednesday),
		Thursday:  encodeDay(w.Thursday),
		Friday:    encodeDay(w.Friday),
		Saturday:  encodeDay(w.Saturday),
		Sunday:    encodeDay(w.Sunday),
	}

	raw, err := json.Marshal(enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeSchedule, err)
	}
	return raw, nil
}

func decodeWeekSchedule(raw []byte) (domain.WeekSchedule, error) {
	if len(raw) == 0 {
		return domain.WeekSchedule{}, nil
	}

	var dec weekScheduleJSON
	if err := json.Unmarshal(raw, &dec); err != nil {
		return domain.WeekSchedule{}, fmt.Errorf("%w: %v", ErrDecodeSchedule, err)
	}

	return domain.WeekSchedule{
		Monday:    decodeDay(dec.Monday),
		Tuesday:   decodeDay(dec.Tuesday),
		Wednesday: decodeDay(dec.Wednesday),
		Thursday:  decodeDay(dec.Thursday),
		Friday:    decodeDay(dec.Friday),
		Saturday:  decodeDay(dec.Saturday),
		Sunday:    decodeDay(dec.Sunday),
	}, nil
}

func encodeDay(d *domain.DayHours) *dayHoursJSON {
	if d == nil {
		return nil
	}
	return &dayHoursJSON{Start: d.Start.String(), End: d.End.String()}
}

func decodeDay(d *dayHoursJSON) *domain.DayHours {
	if d == nil {
		return nil
	}
	return &domain.DayHours{
		Start: types.TimeString(d.Start),
		End:   types.TimeString(d.End),
	}
}
