package update_charge_status

import (
	"context"

	"github.com/m04kA/SMC-BerthService/internal/service/assignments/models"
)

type AssignmentService interface {
	UpdateChargePaymentStatus(ctx context.Context, chargeID int64, status string) (*models.ChargeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
