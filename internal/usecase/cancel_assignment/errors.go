package cancel_assignment

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("cancel_assignment: invalid input data")

	// ErrAssignmentNotFound возвращается, когда назначение не найдено
	ErrAssignmentNotFound = errors.New("cancel_assignment: assignment not found")

	// ErrAlreadyCompleted возвращается при попытке отменить завершённое назначение
	ErrAlreadyCompleted = errors.New("cancel_assignment: assignment already completed")

	// ErrAlreadyCancelled возвращается при повторной отмене назначения
	ErrAlreadyCancelled = errors.New("cancel_assignment: assignment already cancelled")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_assignment: internal error")
)
