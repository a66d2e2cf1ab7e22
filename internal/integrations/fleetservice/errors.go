package fleetservice

import "errors"

var (
	// ErrShipNotFound возвращается, когда судно не найдено
	ErrShipNotFound = errors.New("ship not found")

	// ErrContainerNotFound возвращается, когда контейнер не найден
	ErrContainerNotFound = errors.New("container not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("fleetservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("fleetservice client: invalid response")
)
