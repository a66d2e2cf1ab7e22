package release_assignment

import (
	"context"

	releaseAssignment "github.com/m04kA/SMC-BerthService/internal/usecase/release_assignment"
)

type ReleaseAssignmentUseCase interface {
	Execute(ctx context.Context, req *releaseAssignment.Request) (*releaseAssignment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
