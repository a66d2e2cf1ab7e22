package get_berth_availability

import (
	"context"

	getBerthAvailability "github.com/m04kA/SMC-BerthService/internal/usecase/get_berth_availability"
)

type GetBerthAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getBerthAvailability.Request) (*getBerthAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
