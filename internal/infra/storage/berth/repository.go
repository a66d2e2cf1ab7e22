package berth

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	"github.com/m04kA/SMC-BerthService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BerthService/pkg/psqlbuilder"
)

var berthColumns = []string{
	"id",
	"name",
	"capacity",
	"current_load",
	"max_ship_length",
	"max_draft",
	"hourly_rate",
	"status",
	"under_maintenance",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с причалами
// Является locking boundary: все мутации загрузки идут через Reserve/Release,
// а GetByIDForUpdate берёт блокировку строки причала в рамках транзакции
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория причалов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает причал по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Berth, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает причал по ID с блокировкой строки (FOR UPDATE)
// Даёт взаимное исключение на уровне причала: конкурентные операции над одним
// причалом сериализуются, операции над разными причалами друг друга не блокируют.
// Должен вызываться только внутри транзакции
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Berth, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.Berth, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(berthColumns...).
		From("berths").
		Where(squirrel.Eq{"id": id})

	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var berth domain.Berth
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&berth.ID,
		&berth.Name,
		&berth.Capacity,
		&berth.CurrentLoad,
		&berth.MaxShipLength,
		&berth.MaxDraft,
		&berth.HourlyRate,
		&berth.Status,
		&berth.UnderMaintenance,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBerthNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan berth: %v", ErrScanRow, err)
	}

	berth.CreatedAt = createdAt.Time
	berth.UpdatedAt = updatedAt.Time

	return &berth, nil
}

// derivedStatusExpr выражение производного статуса причала после изменения
// загрузки на units (op "+" или "-"). Статус occupied только при итоговой
// загрузке > 0: резерв с units=0 (maintenance/inspection назначения) не
// помечает свободный причал занятым
func derivedStatusExpr(op string, units int) squirrel.Sqlizer {
	return squirrel.Expr(
		"CASE WHEN under_maintenance THEN 'maintenance' "+
			"WHEN current_load "+op+" ? > 0 THEN 'occupied' "+
			"ELSE 'available' END", units)
}

// Reserve атомарно увеличивает загрузку причала на units
// Условие current_load + units <= capacity проверяется в самом UPDATE,
// поэтому превышение вместимости невозможно даже при конкурентных вызовах.
// Производный статус причала поддерживается тем же запросом
func (r *Repository) Reserve(ctx context.Context, id int64, units int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("berths").
		Set("current_load", squirrel.Expr("current_load + ?", units)).
		Set("status", derivedStatusExpr("+", units)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("current_load + ? <= capacity", units)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reserve - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reserve - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Причал существует (проверяется вызывающим кодом до Reserve),
		// значит не прошло условие вместимости
		return ErrCapacityExceeded
	}

	return nil
}

// Release атомарно уменьшает загрузку причала на units
// Загрузка никогда не опускается ниже нуля: условие current_load >= units
// проверяется в самом UPDATE. Статус возвращается в available, когда
// загрузка достигает нуля и флаг обслуживания снят
func (r *Repository) Release(ctx context.Context, id int64, units int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("berths").
		Set("current_load", squirrel.Expr("current_load - ?", units)).
		Set("status", derivedStatusExpr("-", units)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("current_load >= ?", units)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInvalidLoad
	}

	return nil
}

// Update обновляет административные атрибуты причала
// Загрузка (current_load) этим методом не меняется — только через Reserve/Release
func (r *Repository) Update(ctx context.Context, id int64, berth *domain.Berth) (*domain.Berth, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("berths").
		Set("name", berth.Name).
		Set("capacity", berth.Capacity).
		Set("max_ship_length", berth.MaxShipLength).
		Set("max_draft", berth.MaxDraft).
		Set("hourly_rate", berth.HourlyRate).
		Set("under_maintenance", berth.UnderMaintenance).
		Set("status", squirrel.Expr(
			"CASE WHEN ? THEN 'maintenance' "+
				"WHEN current_load > 0 THEN 'occupied' "+
				"ELSE 'available' END", berth.UnderMaintenance)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING current_load, status, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&berth.CurrentLoad,
		&berth.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBerthNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	berth.ID = id
	berth.CreatedAt = createdAt.Time
	berth.UpdatedAt = updatedAt.Time

	return berth, nil
}

// Create создает новый причал (административная операция)
func (r *Repository) Create(ctx context.Context, berth *domain.Berth) (*domain.Berth, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("berths").
		Columns(
			"name",
			"capacity",
			"current_load",
			"max_ship_length",
			"max_draft",
			"hourly_rate",
			"status",
			"under_maintenance",
		).
		Values(
			berth.Name,
			berth.Capacity,
			0,
			berth.MaxShipLength,
			berth.MaxDraft,
			berth.HourlyRate,
			domain.BerthStatusAvailable,
			false,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&berth.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	berth.CurrentLoad = 0
	berth.Status = domain.BerthStatusAvailable
	berth.CreatedAt = createdAt.Time
	berth.UpdatedAt = updatedAt.Time

	return berth, nil
}
