package charge

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	"github.com/m04kA/SMC-BerthService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BerthService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var chargeColumns = []string{
	"id",
	"berth_assignment_id",
	"hourly_rate",
	"total_hours",
	"base_charges",
	"service_charges",
	"total_charges",
	"charged_at",
	"payment_status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с начислениями за использование причалов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория начислений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает начисление за использование причала
// Уникальный индекс по berth_assignment_id гарантирует ровно одно
// начисление на завершённое назначение
func (r *Repository) Create(ctx context.Context, c *domain.BerthUsageCharge) (*domain.BerthUsageCharge, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("berth_usage_charges").
		Columns(
			"berth_assignment_id",
			"hourly_rate",
			"total_hours",
			"base_charges",
			"service_charges",
			"total_charges",
			"charged_at",
			"payment_status",
		).
		Values(
			c.BerthAssignmentID,
			c.HourlyRate,
			c.TotalHours,
			c.BaseCharges,
			c.ServiceCharges,
			c.TotalCharges,
			c.ChargedAt,
			c.PaymentStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		// 23505 = unique_violation
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrDuplicateCharge
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByAssignmentID получает начисление по ID назначения
func (r *Repository) GetByAssignmentID(ctx context.Context, assignmentID int64) (*domain.BerthUsageCharge, error) {
	return r.getOne(ctx, squirrel.Eq{"berth_assignment_id": assignmentID})
}

// GetByID получает начисление по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BerthUsageCharge, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.BerthUsageCharge, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(chargeColumns...).
		From("berth_usage_charges").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.BerthUsageCharge
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.BerthAssignmentID,
		&c.HourlyRate,
		&c.TotalHours,
		&c.BaseCharges,
		&c.ServiceCharges,
		&c.TotalCharges,
		&c.ChargedAt,
		&c.PaymentStatus,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrChargeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan charge: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// UpdatePaymentStatus обновляет платёжный статус начисления
// Суммы начисления после создания неизменяемы — меняется только статус
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("berth_usage_charges").
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrChargeNotFound
	}

	return nil
}
