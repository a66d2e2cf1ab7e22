package release_assignment

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("release_assignment: invalid input data")

	// ErrAssignmentNotFound возвращается, когда назначение не найдено
	ErrAssignmentNotFound = errors.New("release_assignment: assignment not found")

	// ErrAlreadyCancelled возвращается при попытке освободить отменённое назначение
	ErrAlreadyCancelled = errors.New("release_assignment: assignment is cancelled")

	// ErrAlreadyCompleted возвращается при повторном освобождении завершённого назначения
	ErrAlreadyCompleted = errors.New("release_assignment: assignment already completed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("release_assignment: internal error")
)
