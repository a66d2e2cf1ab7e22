package cancel_assignment

import (
	"context"

	cancelAssignment "github.com/m04kA/SMC-BerthService/internal/usecase/cancel_assignment"
)

type CancelAssignmentUseCase interface {
	Execute(ctx context.Context, req *cancelAssignment.Request) (*cancelAssignment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
