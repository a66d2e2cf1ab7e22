package release_assignment

import (
	"github.com/shopspring/decimal"

	serviceModels "github.com/m04kA/SMC-BerthService/internal/service/assignments/models"
	releaseAssignment "github.com/m04kA/SMC-BerthService/internal/usecase/release_assignment"
)

// ReleaseAssignmentRequest HTTP request model
type ReleaseAssignmentRequest struct {
	ServiceCharges *string `json:"serviceCharges,omitempty"` // Decimal строкой
}

// ReleaseAssignmentResponse HTTP response: назначение и начисление
type ReleaseAssignmentResponse struct {
	Assignment *serviceModels.AssignmentResponse `json:"assignment"`
	Charge     *serviceModels.ChargeResponse     `json:"charge"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReleaseAssignmentRequest) ToUseCaseRequest(assignmentID int64) (*releaseAssignment.Request, error) {
	req := &releaseAssignment.Request{AssignmentID: assignmentID}

	if r.ServiceCharges != nil {
		charges, err := decimal.NewFromString(*r.ServiceCharges)
		if err != nil {
			return nil, err
		}
		req.ServiceCharges = &charges
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *releaseAssignment.Response) *ReleaseAssignmentResponse {
	return &ReleaseAssignmentResponse{
		Assignment: serviceModels.FromDomainAssignment(resp.Assignment),
		Charge:     serviceModels.FromDomainCharge(resp.Charge),
	}
}
