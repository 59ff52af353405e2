package check_availability

import "errors"

var (
	// ErrWarehouseNotFound возвращается, когда склад не найден
	ErrWarehouseNotFound = errors.New("check_availability: warehouse not found")

	// ErrInvalidRange возвращается, когда дата окончания не позже даты начала
	ErrInvalidRange = errors.New("check_availability: end date must be after start date")

	// ErrUnsupportedResource возвращается, когда склад не продает
	// запрошенное измерение емкости
	ErrUnsupportedResource = errors.New("check_availability: resource type not supported by warehouse")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
