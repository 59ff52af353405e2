package warehouse

import "errors"

var (
	// ErrWarehouseNotFound возвращается, когда склад не найден
	ErrWarehouseNotFound = errors.New("warehouse.repository: warehouse not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("warehouse.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("warehouse.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("warehouse.repository: failed to scan row")
)
