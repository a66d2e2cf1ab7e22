package record_arrival

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("record_arrival: invalid input data")

	// ErrAssignmentNotFound возвращается, когда назначение не найдено
	ErrAssignmentNotFound = errors.New("record_arrival: assignment not found")

	// ErrAlreadyArrived возвращается, когда прибытие уже зафиксировано
	ErrAlreadyArrived = errors.New("record_arrival: arrival already recorded")

	// ErrAssignmentTerminal возвращается для завершённых и отменённых назначений
	ErrAssignmentTerminal = errors.New("record_arrival: assignment is in terminal status")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("record_arrival: internal error")
)
