package create_assignment

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	// (в том числе когда не указаны ни судно, ни контейнер)
	ErrValidation = errors.New("create_assignment: invalid input data")

	// ErrBerthNotFound возвращается, когда причал не найден
	ErrBerthNotFound = errors.New("create_assignment: berth not found")

	// ErrShipNotFound возвращается, когда судно не найдено
	ErrShipNotFound = errors.New("create_assignment: ship not found")

	// ErrContainerNotFound возвращается, когда контейнер не найден
	ErrContainerNotFound = errors.New("create_assignment: container not found")

	// ErrBerthUnderMaintenance возвращается, когда причал закрыт на обслуживание
	ErrBerthUnderMaintenance = errors.New("create_assignment: berth is under maintenance")

	// ErrDimensionExceeded возвращается, когда габариты судна превышают лимиты причала
	ErrDimensionExceeded = errors.New("create_assignment: ship dimensions exceed berth limits")

	// ErrTimeConflict возвращается при пересечении временного окна с существующим назначением
	ErrTimeConflict = errors.New("create_assignment: time window conflicts with existing assignment")

	// ErrCapacityExceeded возвращается, когда загрузка превысила бы вместимость причала
	ErrCapacityExceeded = errors.New("create_assignment: berth capacity exceeded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_assignment: internal error")
)
