package pricing

import "errors"

var (
	// ErrWarehouseNotFound возвращается, когда склад не найден
	ErrWarehouseNotFound = errors.New("pricing.service: warehouse not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на операцию
	ErrAccessDenied = errors.New("pricing.service: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("pricing.service: invalid input data")

	// ErrUnsupportedResource возвращается, когда склад не поддерживает
	// указанный тип ресурса
	ErrUnsupportedResource = errors.New("pricing.service: resource type not supported by warehouse")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pricing.service: internal error")
)
