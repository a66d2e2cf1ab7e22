package assignments

import "errors"

var (
	// ErrAssignmentNotFound возвращается, когда назначение не найдено
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrChargeNotFound возвращается, когда начисление не найдено
	ErrChargeNotFound = errors.New("usage charge not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTransition возвращается при недопустимой смене статуса оплаты
	ErrInvalidTransition = errors.New("invalid payment status transition")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
