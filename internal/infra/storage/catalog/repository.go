// Package catalog - read-only репозиторий справочных данных
// (пакеты, декорации, темы, доплаты). Движок бронирования их не изменяет.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Studio-ReservationService/internal/domain"
	"github.com/m04kA/Studio-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Studio-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий справочника услуг студии
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetPackOffer получает пакет по ID
func (r *Repository) GetPackOffer(ctx context.Context, id int64) (*domain.PackOffer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "base_price", "duration_minutes", "is_active", "sort_order", "created_at").
		From("pack_offers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPackOffer - build select query: %v", ErrBuildQuery, err)
	}

	var pack domain.PackOffer
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pack.ID,
		&pack.Name,
		&pack.BasePrice,
		&pack.DurationMinutes,
		&pack.IsActive,
		&pack.SortOrder,
		&pack.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPackOfferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPackOffer - scan pack offer: %v", ErrScanRow, err)
	}

	return &pack, nil
}

// GetDecor получает декорацию по ID
func (r *Repository) GetDecor(ctx context.Context, id int64) (*domain.Decor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "is_active", "sort_order", "created_at").
		From("decors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDecor - build select query: %v", ErrBuildQuery, err)
	}

	var decor domain.Decor
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&decor.ID,
		&decor.Name,
		&decor.IsActive,
		&decor.SortOrder,
		&decor.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDecorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDecor - scan decor: %v", ErrScanRow, err)
	}

	return &decor, nil
}

// GetTheme получает тему по ID
func (r *Repository) GetTheme(ctx context.Context, id int64) (*domain.Theme, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "is_active", "sort_order", "created_at").
		From("themes").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTheme - build select query: %v", ErrBuildQuery, err)
	}

	var theme domain.Theme
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&theme.ID,
		&theme.Name,
		&theme.IsActive,
		&theme.SortOrder,
		&theme.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrThemeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTheme - scan theme: %v", ErrScanRow, err)
	}

	return &theme, nil
}

// GetSupplements получает доплаты по списку ID.
// Возвращает ErrSupplementNotFound, если хотя бы один ID не найден
func (r *Repository) GetSupplements(ctx context.Context, ids []int64) ([]*domain.SupplementService, error) {
	if len(ids) == 0 {
		return []*domain.SupplementService{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "price", "is_active", "sort_order", "created_at").
		From("supplement_services").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("sort_order ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSupplements - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSupplements - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	supplements := make([]*domain.SupplementService, 0, len(ids))
	for rows.Next() {
		var s domain.SupplementService
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.IsActive, &s.SortOrder, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetSupplements - scan row: %v", ErrScanRow, err)
		}
		supplements = append(supplements, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSupplements - rows error: %v", ErrScanRow, err)
	}

	if len(supplements) != len(uniqueIDs(ids)) {
		return nil, ErrSupplementNotFound
	}

	return supplements, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
