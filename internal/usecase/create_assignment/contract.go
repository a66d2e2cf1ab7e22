package create_assignment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	"github.com/m04kA/SMC-BerthService/internal/integrations/fleetservice"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	Create(ctx context.Context, a *domain.BerthAssignment) (*domain.BerthAssignment, error)
	GetWithFilter(ctx context.Context, filter domain.AssignmentFilter) ([]*domain.BerthAssignment, error)
}

// BerthRepository интерфейс репозитория причалов
type BerthRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Berth, error)
	Reserve(ctx context.Context, id int64, units int) error
}

// FleetServiceClient интерфейс клиента для FleetService
type FleetServiceClient interface {
	GetShip(ctx context.Context, shipID int64) (*fleetservice.Ship, error)
	GetContainer(ctx context.Context, containerID int64) (*fleetservice.Container, error)
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

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
