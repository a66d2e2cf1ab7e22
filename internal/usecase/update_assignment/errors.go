package update_assignment

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("update_assignment: invalid input data")

	// ErrAssignmentNotFound возвращается, когда назначение не найдено
	ErrAssignmentNotFound = errors.New("update_assignment: assignment not found")

	// ErrBerthNotFound возвращается, когда целевой причал не найден
	ErrBerthNotFound = errors.New("update_assignment: berth not found")

	// ErrShipNotFound возвращается, когда судно назначения больше не найдено
	ErrShipNotFound = errors.New("update_assignment: ship not found")

	// ErrNotUpdatable возвращается, когда назначение уже не в статусе scheduled
	ErrNotUpdatable = errors.New("update_assignment: assignment can no longer be updated")

	// ErrBerthUnderMaintenance возвращается, когда целевой причал закрыт на обслуживание
	ErrBerthUnderMaintenance = errors.New("update_assignment: berth is under maintenance")

	// ErrDimensionExceeded возвращается, когда габариты судна превышают лимиты целевого причала
	ErrDimensionExceeded = errors.New("update_assignment: ship dimensions exceed berth limits")

	// ErrTimeConflict возвращается при пересечении нового окна с существующим назначением
	ErrTimeConflict = errors.New("update_assignment: time window conflicts with existing assignment")

	// ErrCapacityExceeded возвращается, когда загрузка превысила бы вместимость причала
	ErrCapacityExceeded = errors.New("update_assignment: berth capacity exceeded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_assignment: internal error")
)
