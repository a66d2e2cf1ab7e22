package get_berth

import (
	"context"

	"github.com/m04kA/SMC-BerthService/internal/service/berths/models"
)

type BerthService interface {
	GetByID(ctx context.Context, id int64) (*models.BerthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
