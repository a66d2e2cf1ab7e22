package get_berth_availability

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("get_berth_availability: invalid input data")

	// ErrBerthNotFound возвращается, когда причал не найден
	ErrBerthNotFound = errors.New("get_berth_availability: berth not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_berth_availability: internal error")
)
