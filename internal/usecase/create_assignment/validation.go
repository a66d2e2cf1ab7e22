package create_assignment

import (
	"fmt"

	"github.com/m04kA/SMC-BerthService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BerthID <= 0 {
		return fmt.Errorf("%w: berthID must be positive", ErrValidation)
	}

	// Хотя бы одна из ссылок судно/контейнер обязательна
	if req.ShipID == nil && req.ContainerID == nil {
		return fmt.Errorf("%w: at least one of shipID or containerID is required", ErrValidation)
	}

	if req.ShipID != nil && *req.ShipID <= 0 {
		return fmt.Errorf("%w: shipID must be positive", ErrValidation)
	}
	if req.ContainerID != nil && *req.ContainerID <= 0 {
		return fmt.Errorf("%w: containerID must be positive", ErrValidation)
	}

	if !req.Window.IsValid() {
		return fmt.Errorf("%w: scheduled departure must be after scheduled arrival", ErrValidation)
	}

	if req.Window.Duration().Hours() > domain.MaxAssignmentWindowHours {
		return fmt.Errorf("%w: assignment window exceeds %d hours", ErrValidation, domain.MaxAssignmentWindowHours)
	}

	if !domain.IsValidAssignmentType(req.AssignmentType) {
		return fmt.Errorf("%w: unknown assignment type %q", ErrValidation, req.AssignmentType)
	}

	if !domain.IsValidPriority(req.Priority) {
		return fmt.Errorf("%w: unknown priority %q", ErrValidation, req.Priority)
	}

	if req.ContainerCount < domain.MinContainerCount || req.ContainerCount > domain.MaxContainerCount {
		return fmt.Errorf("%w: containerCount must be between %d and %d",
			ErrValidation, domain.MinContainerCount, domain.MaxContainerCount)
	}

	if req.AssignmentType.RequiresLoad() && req.ContainerCount == 0 {
		return fmt.Errorf("%w: containerCount must be positive for %s assignments",
			ErrValidation, req.AssignmentType)
	}

	return nil
}

// findConflict ищет назначение, окно которого пересекается с window
// Рассматриваются только назначения, удерживающие причал (scheduled/active);
// excludeID позволяет перепроверить переносимое назначение без конфликта с самим собой.
// Линейный скан достаточен: на причал приходятся десятки активных назначений.
// Приоритет не участвует в решении — конфликтующий запрос отклоняется всегда
func findConflict(window domain.Window, assignments []*domain.BerthAssignment, excludeID *int64) *domain.BerthAssignment {
	for _, a := range assignments {
		if excludeID != nil && a.ID == *excludeID {
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
