package assignment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	"github.com/m04kA/SMC-BerthService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BerthService/pkg/psqlbuilder"
)

var assignmentColumns = []string{
	"id",
	"berth_id",
	"ship_id",
	"container_id",
	"assignment_type",
	"priority",
	"status",
	"scheduled_arrival",
	"scheduled_departure",
	"actual_arrival",
	"actual_departure",
	"assigned_at",
	"released_at",
	"container_count",
	"cost",
	"ship_name",
	"container_number",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с назначениями причалов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория назначений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое назначение причала
// Вызывается только из usecase создания в рамках сериализуемой транзакции:
// проверка пересечений и резервирование загрузки должны быть атомарны с INSERT
func (r *Repository) Create(ctx context.Context, a *domain.BerthAssignment) (*domain.BerthAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("berth_assignments").
		Columns(
			"berth_id",
			"ship_id",
			"container_id",
			"assignment_type",
			"priority",
			"status",
			"scheduled_arrival",
			"scheduled_departure",
			"assigned_at",
			"container_count",
			"ship_name",
			"container_number",
		).
		Values(
			a.BerthID,
			a.ShipID,
			a.ContainerID,
			a.AssignmentType,
			a.Priority,
			a.Status,
			a.ScheduledArrival,
			a.ScheduledDeparture,
			a.AssignedAt,
			a.ContainerCount,
			a.ShipName,
			a.ContainerNumber,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID получает назначение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BerthAssignment, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает назначение по ID с блокировкой строки (FOR UPDATE)
// Используется lifecycle-операциями для защиты от двойного release/cancel.
// Должен вызываться только внутри транзакции
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.BerthAssignment, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.BerthAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(assignmentColumns...).
		From("berth_assignments").
		Where(squirrel.Eq{"id": id})

	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	a, err := scanAssignmentRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan assignment: %v", ErrScanRow, err)
	}

	return a, nil
}

// GetWithFilter получает назначения с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Причалу (BerthID) и судну (ShipID) - опционально
// - Периоду (From, To): назначения, окно которых пересекается с [From, To)
// - Статусу (Status) - опционально
// - Включению терминальных назначений (IncludeTerminal)
//
// Если фильтрация идёт по причалу без терминальных статусов и вызов происходит
// внутри транзакции, выборка блокируется FOR UPDATE — это путь usecase создания,
// где список пересекающихся назначений не должен меняться до конца транзакции
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AssignmentFilter) ([]*domain.BerthAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(assignmentColumns...).
		From("berth_assignments")

	if filter.BerthID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"berth_id": *filter.BerthID})
	}
	if filter.ShipID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"ship_id": *filter.ShipID})
	}

	// Пересечение с периодом [From, To) — полуоткрытые интервалы
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"scheduled_departure": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"scheduled_arrival": *filter.To})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeTerminal {
		occupying := make([]string, len(domain.OccupyingStatuses))
		for i, s := range domain.OccupyingStatuses {
			occupying[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": occupying})
	}

	selectBuilder = selectBuilder.OrderBy("scheduled_arrival ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.BerthID != nil && !filter.IncludeTerminal && filter.Status == nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// MarkActive переводит назначение в статус active с фиксацией фактического прибытия
func (r *Repository) MarkActive(ctx context.Context, id int64, actualArrival time.Time) error {
	return r.execLifecycleUpdate(ctx, "MarkActive", psqlbuilder.Update("berth_assignments").
		Set("status", domain.StatusActive).
		Set("actual_arrival", actualArrival).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// Complete переводит назначение в статус completed
// Фиксирует фактическое убытие, момент release и итоговую стоимость
func (r *Repository) Complete(ctx context.Context, id int64, releasedAt time.Time, cost decimal.Decimal) error {
	return r.execLifecycleUpdate(ctx, "Complete", psqlbuilder.Update("berth_assignments").
		Set("status", domain.StatusCompleted).
		Set("actual_departure", releasedAt).
		Set("released_at", releasedAt).
		Set("cost", cost).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// Cancel переводит назначение в статус cancelled
func (r *Repository) Cancel(ctx context.Context, id int64, cancelledAt time.Time) error {
	return r.execLifecycleUpdate(ctx, "Cancel", psqlbuilder.Update("berth_assignments").
		Set("status", domain.StatusCancelled).
		Set("released_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// UpdateSchedule обновляет изменяемые атрибуты назначения
// Вызывается из usecase обновления после повторных проверок пересечений и вместимости
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, a *domain.BerthAssignment) error {
	return r.execLifecycleUpdate(ctx, "UpdateSchedule", psqlbuilder.Update("berth_assignments").
		Set("berth_id", a.BerthID).
		Set("scheduled_arrival", a.ScheduledArrival).
		Set("scheduled_departure", a.ScheduledDeparture).
		Set("assignment_type", a.AssignmentType).
		Set("priority", a.Priority).
		Set("container_count", a.ContainerCount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

func (r *Repository) execLifecycleUpdate(ctx context.Context, method string, builder squirrel.UpdateBuilder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, method, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAssignmentRow(row rowScanner) (*domain.BerthAssignment, error) {
	var a domain.BerthAssignment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.BerthID,
		&a.ShipID,
		&a.ContainerID,
		&a.AssignmentType,
		&a.Priority,
		&a.Status,
		&a.ScheduledArrival,
		&a.ScheduledDeparture,
		&a.ActualArrival,
		&a.ActualDeparture,
		&a.AssignedAt,
		&a.ReleasedAt,
		&a.ContainerCount,
		&a.Cost,
		&a.ShipName,
		&a.ContainerNumber,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

// scanAssignments сканирует результаты запроса в слайс назначений
func scanAssignments(rows *sql.Rows) ([]*domain.BerthAssignment, error) {
	assignments := make([]*domain.BerthAssignment, 0)

	for rows.Next() {
		a, err := scanAssignmentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAssignments - scan row: %v", ErrScanRow, err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAssignments - rows error: %v", ErrScanRow, err)
	}

	return assignments, nil
}
