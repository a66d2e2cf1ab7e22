package update_assignment

import (
	"fmt"

	"github.com/m04kA/SMC-BerthService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AssignmentID <= 0 {
		return fmt.Errorf("%w: assignmentID must be positive", ErrValidation)
	}

	if req.BerthID == nil && req.Window == nil && req.AssignmentType == nil &&
		req.Priority == nil && req.ContainerCount == nil {
		return fmt.Errorf("%w: at least one field must be provided", ErrValidation)
	}

	if req.BerthID != nil && *req.BerthID <= 0 {
		return fmt.Errorf("%w: berthID must be positive", ErrValidation)
	}

	if req.Window != nil {
		if !req.Window.IsValid() {
			return fmt.Errorf("%w: scheduled departure must be after scheduled arrival", ErrValidation)
		}
		if req.Window.Duration().Hours() > domain.MaxAssignmentWindowHours {
			return fmt.Errorf("%w: assignment window exceeds %d hours", ErrValidation, domain.MaxAssignmentWindowHours)
		}
	}

	if req.AssignmentType != nil && !domain.IsValidAssignmentType(*req.AssignmentType) {
		return fmt.Errorf("%w: unknown assignment type %q", ErrValidation, *req.AssignmentType)
	}

	if req.Priority != nil && !domain.IsValidPriority(*req.Priority) {
		return fmt.Errorf("%w: unknown priority %q", ErrValidation, *req.Priority)
	}

	if req.ContainerCount != nil &&
		(*req.ContainerCount < domain.MinContainerCount || *req.ContainerCount > domain.MaxContainerCount) {
		return fmt.Errorf("%w: containerCount must be between %d and %d",
			ErrValidation, domain.MinContainerCount, domain.MaxContainerCount)
	}

	return nil
}

// validateUpdated проверяет согласованность итогового состояния назначения
func validateUpdated(a *domain.BerthAssignment) error {
	if a.AssignmentType.RequiresLoad() && a.ContainerCount == 0 {
		return fmt.Errorf("%w: containerCount must be positive for %s assignments",
			ErrValidation, a.AssignmentType)
	}
	return nil
}

// findConflict ищет назначение, окно которого пересекается с window
// Само переносимое назначение исключается по excludeID
func findConflict(window domain.Window, assignments []*domain.BerthAssignment, excludeID int64) *domain.BerthAssignment {
	for _, a := range assignments {
		if a.ID == excludeID {
			continue
		}
		if !a.HoldsCapacity() {
			continue
		}
		if window.Overlaps(a.Window()) {
			return a
		}
	}
	return nil
}
