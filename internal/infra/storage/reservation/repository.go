package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	"github.com/m04kA/Studio-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Studio-ReservationService/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"confirmation_id",
	"status",
	"start_at",
	"end_at",
	"duration_hours",
	"timezone",
	"decor_id",
	"pack_offer_id",
	"theme_id",
	"custom_theme",
	"customer_name",
	"customer_email",
	"customer_phone",
	"notes",
	"metadata",
	"total_price",
	"assigned_admin_id",
	"confirmed_by_admin_id",
	"created_at",
	"updated_at",
	"confirmed_at",
}

// Repository репозиторий для работы с бронями студии
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую бронь (только основную строку; снапшоты доплат и
// ответов добавляются отдельными методами в той же транзакции).
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"confirmation_id",
			"status",
			"start_at",
			"end_at",
			"duration_hours",
			"timezone",
			"decor_id",
			"pack_offer_id",
			"theme_id",
			"custom_theme",
			"customer_name",
			"customer_email",
			"customer_phone",
			"notes",
			"metadata",
			"total_price",
			"assigned_admin_id",
			"confirmed_by_admin_id",
			"confirmed_at",
		).
		Values(
			res.ConfirmationID,
			res.Status,
			res.StartAt,
			res.EndAt,
			res.DurationHours,
			res.Timezone,
			res.DecorID,
			res.PackOfferID,
			res.ThemeID,
			res.CustomTheme,
			res.CustomerName,
			res.CustomerEmail,
			res.CustomerPhone,
			res.Notes,
			nullableJSON(res.Metadata),
			res.TotalPrice,
			res.AssignedAdminID,
			res.ConfirmedByAdminID,
			res.ConfirmedAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// AddSupplements сохраняет снапшоты доплат (цена фиксируется на момент брони)
func (r *Repository) AddSupplements(ctx context.Context, reservationID int64, supplements []domain.ReservationSupplement) error {
	if len(supplements) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("reservation_supplements").
		Columns("reservation_id", "supplement_id", "price_at_booking")

	for _, s := range supplements {
		builder = builder.Values(reservationID, s.SupplementID, s.PriceAtBooking)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddSupplements - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddSupplements - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// AddAnswers сохраняет денормализованные снапшоты ответов клиента
func (r *Repository) AddAnswers(ctx context.Context, reservationID int64, answers []domain.ClientAnswer) error {
	if len(answers) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("reservation_answers").
		Columns("reservation_id", "question", "answer")

	for _, a := range answers {
		builder = builder.Values(reservationID, a.Question, a.Answer)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddAnswers - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddAnswers - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает бронь по ID вместе со снапшотами доплат и ответов
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	if res.Supplements, err = r.listSupplements(ctx, executor, id); err != nil {
		return nil, err
	}
	if res.Answers, err = r.listAnswers(ctx, executor, id); err != nil {
		return nil, err
	}

	return res, nil
}

// FindOverlapping возвращает ID первой активной (pending/confirmed) брони,
// пересекающейся с полуоткрытым интервалом [start, end), или nil.
// excludeID исключает бронь из проверки (перенос брони против самой себя).
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы проверка и
// последующая запись составляли одну атомарную единицу
func (r *Repository) FindOverlapping(ctx context.Context, start, end time.Time, excludeID *int64) (*int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("reservations").
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		Where(squirrel.Lt{"start_at": end}).
		Where(squirrel.Gt{"end_at": start}).
		OrderBy("start_at ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: FindOverlapping - rows error: %w", ErrScanRow, err)
		}
		return nil, nil
	}

	var conflictID int64
	if err := rows.Scan(&conflictID); err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - scan id: %w", ErrScanRow, err)
	}

	return &conflictID, nil
}

// List получает брони по фильтру (статусы, диапазон начала), без снапшотов.
// Сортировка по времени начала по возрастанию
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("start_at ASC")

	if len(filter.Statuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(filter.Statuses)})
	}
	if filter.StartFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_at": *filter.StartFrom})
	}
	if filter.StartTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_at": *filter.StartTo})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return reservations, nil
}

// StatusUpdate параметры обновления статуса брони
type StatusUpdate struct {
	Status             domain.ReservationStatus
	ConfirmedByAdminID *int64
	ConfirmedAt        *time.Time
}

// UpdateStatus обновляет статус брони (и поля подтверждения, если заданы)
func (r *Repository) UpdateStatus(ctx context.Context, id int64, upd StatusUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("status", upd.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	if upd.ConfirmedByAdminID != nil {
		updateBuilder = updateBuilder.Set("confirmed_by_admin_id", *upd.ConfirmedByAdminID)
	}
	if upd.ConfirmedAt != nil {
		updateBuilder = updateBuilder.Set("confirmed_at", *upd.ConfirmedAt)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// UpdateInterval обновляет интервал брони (перенос); статус не меняется
func (r *Repository) UpdateInterval(ctx context.Context, id int64, start, end time.Time, durationHours int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("start_at", start).
		Set("end_at", end).
		Set("duration_hours", durationHours).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateInterval - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateInterval - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateInterval - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// AddStatusHistory добавляет строку в append-only журнал переходов статуса
func (r *Repository) AddStatusHistory(ctx context.Context, h *domain.StatusHistory) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservation_status_history").
		Columns("reservation_id", "old_status", "new_status", "notes").
		Values(h.ReservationID, h.OldStatus, h.NewStatus, h.Notes).
		Suffix("RETURNING id, changed_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddStatusHistory - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &h.ChangedAt)
	if err != nil {
		return fmt.Errorf("%w: AddStatusHistory - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// ListStatusHistory получает журнал переходов статуса брони (старые записи первыми)
func (r *Repository) ListStatusHistory(ctx context.Context, reservationID int64) ([]*domain.StatusHistory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "reservation_id", "old_status", "new_status", "notes", "changed_at").
		From("reservation_status_history").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("changed_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListStatusHistory - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStatusHistory - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	history := make([]*domain.StatusHistory, 0)
	for rows.Next() {
		var h domain.StatusHistory
		if err := rows.Scan(&h.ID, &h.ReservationID, &h.OldStatus, &h.NewStatus, &h.Notes, &h.ChangedAt); err != nil {
			return nil, fmt.Errorf("%w: ListStatusHistory - scan row: %w", ErrScanRow, err)
		}
		history = append(history, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStatusHistory - rows error: %w", ErrScanRow, err)
	}

	return history, nil
}

// AddNote добавляет внутреннюю заметку администратора (append-only)
func (r *Repository) AddNote(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservation_notes").
		Columns("reservation_id", "note_text", "created_by").
		Values(n.ReservationID, n.NoteText, n.CreatedBy).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddNote - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: AddNote - execute insert: %w", ErrExecQuery, err)
	}

	return n, nil
}

// ListNotes получает заметки брони (старые первыми)
func (r *Repository) ListNotes(ctx context.Context, reservationID int64) ([]*domain.Note, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "reservation_id", "note_text", "created_by", "created_at").
		From("reservation_notes").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListNotes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListNotes - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	notes := make([]*domain.Note, 0)
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.ReservationID, &n.NoteText, &n.CreatedBy, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListNotes - scan row: %w", ErrScanRow, err)
		}
		notes = append(notes, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListNotes - rows error: %w", ErrScanRow, err)
	}

	return notes, nil
}

// Delete физически удаляет бронь вместе со снапшотами, заметками и журналом.
// В отличие от отмены (cancel) стирает аудиторский след; вызывать в транзакции
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	childTables := []string{
		"reservation_supplements",
		"reservation_answers",
		"reservation_notes",
		"reservation_status_history",
	}

	for _, table := range childTables {
		query, args, err := psqlbuilder.Delete(table).
			Where(squirrel.Eq{"reservation_id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Delete - build delete query for %s: %v", ErrBuildQuery, table, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Delete - execute delete for %s: %w", ErrExecQuery, table, err)
		}
	}

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку брони
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var metadata []byte
	var createdAt, updatedAt, confirmedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.ConfirmationID,
		&res.Status,
		&res.StartAt,
		&res.EndAt,
		&res.DurationHours,
		&res.Timezone,
		&res.DecorID,
		&res.PackOfferID,
		&res.ThemeID,
		&res.CustomTheme,
		&res.CustomerName,
		&res.CustomerEmail,
		&res.CustomerPhone,
		&res.Notes,
		&metadata,
		&res.TotalPrice,
		&res.AssignedAdminID,
		&res.ConfirmedByAdminID,
		&createdAt,
		&updatedAt,
		&confirmedAt,
	)
	if err != nil {
		return nil, err
	}

	res.Metadata = metadata
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time
	if confirmedAt.Valid {
		t := confirmedAt.Time
		res.ConfirmedAt = &t
	}

	return &res, nil
}

// listSupplements получает снапшоты доплат брони
func (r *Repository) listSupplements(ctx context.Context, executor DBExecutor, reservationID int64) ([]domain.ReservationSupplement, error) {
	query, args, err := psqlbuilder.Select("id", "reservation_id", "supplement_id", "price_at_booking").
		From("reservation_supplements").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: listSupplements - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listSupplements - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	supplements := make([]domain.ReservationSupplement, 0)
	for rows.Next() {
		var s domain.ReservationSupplement
		if err := rows.Scan(&s.ID, &s.ReservationID, &s.SupplementID, &s.PriceAtBooking); err != nil {
			return nil, fmt.Errorf("%w: listSupplements - scan row: %w", ErrScanRow, err)
		}
		supplements = append(supplements, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listSupplements - rows error: %w", ErrScanRow, err)
	}

	return supplements, nil
}

// listAnswers получает снапшоты ответов клиента
func (r *Repository) listAnswers(ctx context.Context, executor DBExecutor, reservationID int64) ([]domain.ClientAnswer, error) {
	query, args, err := psqlbuilder.Select("id", "reservation_id", "question", "answer").
		From("reservation_answers").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: listAnswers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listAnswers - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	answers := make([]domain.ClientAnswer, 0)
	for rows.Next() {
		var a domain.ClientAnswer
		if err := rows.Scan(&a.ID, &a.ReservationID, &a.Question, &a.Answer); err != nil {
			return nil, fmt.Errorf("%w: listAnswers - scan row: %w", ErrScanRow, err)
		}
		answers = append(answers, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listAnswers - rows error: %w", ErrScanRow, err)
	}

	return answers, nil
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func nullableJSON(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return b
}
