package create_berth

import (
	"context"

	"github.com/m04kA/SMC-BerthService/internal/service/berths/models"
)

type BerthService interface {
	Create(ctx context.Context, req *models.CreateBerthRequest) (*models.BerthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
