package berths

import (
	"context"

	"github.com/m04kA/SMC-BerthService/internal/domain"
)

// BerthRepository интерфейс репозитория причалов
type BerthRepository interface {
	Create(ctx context.Context, berth *domain.Berth) (*domain.Berth, error)
	GetByID(ctx context.Context, id int64) (*domain.Berth, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Berth, error)
	Update(ctx context.Context, id int64, berth *domain.Berth) (*domain.Berth, error)
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
