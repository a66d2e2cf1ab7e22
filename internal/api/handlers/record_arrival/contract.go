package record_arrival

import (
	"context"

	recordArrival "github.com/m04kA/SMC-BerthService/internal/usecase/record_arrival"
)

type RecordArrivalUseCase interface {
	Execute(ctx context.Context, req *recordArrival.Request) (*recordArrival.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
