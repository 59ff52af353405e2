package pricing

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда прайс-лист не найден
	// для указанного склада и типа ресурса
	ErrScheduleNotFound = errors.New("pricing.repository: pricing schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pricing.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pricing.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pricing.repository: failed to scan row")
)
