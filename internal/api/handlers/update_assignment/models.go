package update_assignment

import (
	"time"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	serviceModels "github.com/m04kA/SMC-BerthService/internal/service/assignments/models"
	updateAssignment "github.com/m04kA/SMC-BerthService/internal/usecase/update_assignment"
)

// UpdateAssignmentRequest HTTP request model
// Все поля опциональны, отсутствующие не изменяются
type UpdateAssignmentRequest struct {
	BerthID            *int64  `json:"berthId,omitempty"`
	ScheduledArrival   *string `json:"scheduledArrival,omitempty"`   // RFC 3339
	ScheduledDeparture *string `json:"scheduledDeparture,omitempty"` // RFC 3339
	AssignmentType     *string `json:"assignmentType,omitempty"`
	Priority           *string `json:"priority,omitempty"`
	ContainerCount     *int    `json:"containerCount,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Окно переносится только целиком: оба времени либо указаны, либо нет
func (r *UpdateAssignmentRequest) ToUseCaseRequest(assignmentID int64) (*updateAssignment.Request, error) {
	req := &updateAssignment.Request{
		AssignmentID:   assignmentID,
		BerthID:        r.BerthID,
		ContainerCount: r.ContainerCount,
	}

	if (r.ScheduledArrival == nil) != (r.ScheduledDeparture == nil) {
		return nil, errPartialWindow
	}
	if r.ScheduledArrival != nil {
		arrival, err := time.Parse(time.RFC3339, *r.ScheduledArrival)
		if err != nil {
			return nil, err
		}
		departure, err := time.Parse(time.RFC3339, *r.ScheduledDeparture)
		if err != nil {
			return nil, err
		}
		req.Window = &domain.Window{Start: arrival, End: departure}
	}

	if r.AssignmentType != nil {
		t := domain.AssignmentType(*r.AssignmentType)
		req.AssignmentType = &t
	}
	if r.Priority != nil {
		p := domain.AssignmentPriority(*r.Priority)
		req.Priority = &p
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAssignment.Response) *serviceModels.AssignmentResponse {
	return serviceModels.FromDomainAssignment(resp.Assignment)
}
