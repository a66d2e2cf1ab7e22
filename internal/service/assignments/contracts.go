package assignments

import (
	"context"

	"github.com/m04kA/SMC-BerthService/internal/domain"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BerthAssignment, error)
	GetWithFilter(ctx context.Context, filter domain.AssignmentFilter) ([]*domain.BerthAssignment, error)
}

// ChargeRepository интерфейс репозитория начислений
type ChargeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BerthUsageCharge, error)
	GetByAssignmentID(ctx context.Context, assignmentID int64) (*domain.BerthUsageCharge, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
