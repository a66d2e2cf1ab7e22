package berth

import "errors"

var (
	// ErrBerthNotFound возвращается, когда причал не найден
	ErrBerthNotFound = errors.New("berth.repository: berth not found")

	// ErrCapacityExceeded возвращается, когда резервирование превышает вместимость причала
	ErrCapacityExceeded = errors.New("berth.repository: capacity exceeded")

	// ErrInvalidLoad возвращается при попытке освободить больше, чем занято
	// Защитная проверка: при корректном учёте не должна срабатывать
	ErrInvalidLoad = errors.New("berth.repository: release exceeds current load")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("berth.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("berth.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("berth.repository: failed to scan row")
)
