package get_berth_availability

import (
	"context"

	"github.com/m04kA/SMC-BerthService/internal/domain"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	GetWithFilter(ctx context.Context, filter domain.AssignmentFilter) ([]*domain.BerthAssignment, error)
}

// BerthRepository интерфейс репозитория причалов
type BerthRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Berth, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
