package release_assignment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BerthService/internal/domain"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BerthAssignment, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.BerthAssignment, error)
	Complete(ctx context.Context, id int64, releasedAt time.Time, cost decimal.Decimal) error
}

// BerthRepository интерфейс репозитория причалов
type BerthRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Berth, error)
	Release(ctx context.Context, id int64, units int) error
}

// ChargeRepository интерфейс репозитория начислений
type ChargeRepository interface {
	Create(ctx context.Context, c *domain.BerthUsageCharge) (*domain.BerthUsageCharge, error)
}

// ChargeCalculator интерфейс расчёта платы за использование причала
type ChargeCalculator interface {
	Compute(assignment *domain.BerthAssignment, berth *domain.Berth, releasedAt time.Time, serviceCharges *decimal.Decimal) *domain.BerthUsageCharge
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
