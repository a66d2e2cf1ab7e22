package charge

import "errors"

var (
	// ErrChargeNotFound возвращается, когда начисление не найдено
	ErrChargeNotFound = errors.New("charge.repository: charge not found")

	// ErrDuplicateCharge возвращается при попытке создать второе начисление
	// для одного назначения (one-to-one с завершённым назначением)
	ErrDuplicateCharge = errors.New("charge.repository: charge already exists for assignment")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("charge.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("charge.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("charge.repository: failed to scan row")
)
