package record_arrival

import (
	"time"

	serviceModels "github.com/m04kA/SMC-BerthService/internal/service/assignments/models"
	recordArrival "github.com/m04kA/SMC-BerthService/internal/usecase/record_arrival"
)

// RecordArrivalRequest HTTP request model
type RecordArrivalRequest struct {
	ArrivalTime *string `json:"arrivalTime,omitempty"` // RFC 3339, по умолчанию текущее время
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RecordArrivalRequest) ToUseCaseRequest(assignmentID int64) (*recordArrival.Request, error) {
	req := &recordArrival.Request{AssignmentID: assignmentID}

	if r.ArrivalTime != nil {
		arrival, err := time.Parse(time.RFC3339, *r.ArrivalTime)
		if err != nil {
			return nil, err
		}
		req.ArrivalTime = &arrival
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *recordArrival.Response) *serviceModels.AssignmentResponse {
	return serviceModels.FromDomainAssignment(resp.Assignment)
}
