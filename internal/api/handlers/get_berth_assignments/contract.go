package get_berth_assignments

import (
	"context"

	"github.com/m04kA/SMC-BerthService/internal/service/assignments/models"
)

type AssignmentService interface {
	List(ctx context.Context, req *models.ListAssignmentsRequest) (*models.AssignmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
