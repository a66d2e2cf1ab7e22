package get_usage_charge

import (
	"context"

	"github.com/m04kA/SMC-BerthService/internal/service/assignments/models"
)

type AssignmentService interface {
	GetCharge(ctx context.Context, assignmentID int64) (*models.ChargeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
