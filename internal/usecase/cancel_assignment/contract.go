package cancel_assignment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BerthService/internal/domain"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BerthAssignment, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.BerthAssignment, error)
	Cancel(ctx context.Context, id int64, cancelledAt time.Time) error
}

// BerthRepository интерфейс репозитория причалов
type BerthRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Berth, error)
	Release(ctx context.Context, id int64, units int) error
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
