package update_assignment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	"github.com/m04kA/SMC-BerthService/internal/integrations/fleetservice"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BerthAssignment, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.BerthAssignment, error)
	GetWithFilter(ctx context.Context, filter domain.AssignmentFilter) ([]*domain.BerthAssignment, error)
	UpdateSchedule(ctx context.Context, id int64, a *domain.BerthAssignment) error
}

// BerthRepository интерфейс репозитория причалов
type BerthRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Berth, error)
	Reserve(ctx context.Context, id int64, units int) error
	Release(ctx context.Context, id int64, units int) error
}

// FleetServiceClient интерфейс клиента для FleetService
type FleetServiceClient interface {
	GetShip(ctx context.Context, shipID int64) (*fleetservice.Ship, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
