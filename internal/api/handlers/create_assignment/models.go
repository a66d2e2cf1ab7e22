package create_assignment

import (
	"time"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	serviceModels "github.com/m04kA/SMC-BerthService/internal/service/assignments/models"
	createAssignment "github.com/m04kA/SMC-BerthService/internal/usecase/create_assignment"
)

// CreateAssignmentRequest HTTP request model
type CreateAssignmentRequest struct {
	BerthID            int64  `json:"berthId"`
	ShipID             *int64 `json:"shipId,omitempty"`
	ContainerID        *int64 `json:"containerId,omitempty"`
	ScheduledArrival   string `json:"scheduledArrival"`   // RFC 3339
	ScheduledDeparture string `json:"scheduledDeparture"` // RFC 3339
	AssignmentType     string `json:"assignmentType"`
	Priority           string `json:"priority"`
	ContainerCount     int    `json:"containerCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAssignmentRequest) ToUseCaseRequest() (*createAssignment.Request, error) {
	arrival, err := time.Parse(time.RFC3339, r.ScheduledArrival)
	if err != nil {
		return nil, err
	}
	departure, err := time.Parse(time.RFC3339, r.ScheduledDeparture)
	if err != nil {
		return nil, err
	}

	return &createAssignment.Request{
		BerthID:        r.BerthID,
		ShipID:         r.ShipID,
		ContainerID:    r.ContainerID,
		Window:         domain.Window{Start: arrival, End: departure},
		AssignmentType: domain.AssignmentType(r.AssignmentType),
		Priority:       domain.AssignmentPriority(r.Priority),
		ContainerCount: r.ContainerCount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAssignment.Response) *serviceModels.AssignmentResponse {
	return serviceModels.FromDomainAssignment(resp.Assignment)
}
