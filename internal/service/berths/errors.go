package berths

import "errors"

var (
	// ErrBerthNotFound возвращается, когда причал не найден
	ErrBerthNotFound = errors.New("berth not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCapacityBelowLoad возвращается при попытке уменьшить вместимость
	// ниже текущей зарезервированной загрузки
	ErrCapacityBelowLoad = errors.New("capacity below current load")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
