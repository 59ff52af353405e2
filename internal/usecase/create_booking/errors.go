package create_booking

import "errors"

var (
	// ErrWarehouseNotFound возвращается, когда склад не найден
	ErrWarehouseNotFound = errors.New("create_booking: warehouse not found")

	// ErrWarehouseInactive возвращается, когда склад не принимает бронирования
	ErrWarehouseInactive = errors.New("create_booking: warehouse is not active")

	// ErrInvalidRange возвращается, когда дата окончания не позже даты начала
	ErrInvalidRange = errors.New("create_booking: end date must be after start date")

	// ErrStartDateInPast возвращается, когда дата начала уже прошла
	ErrStartDateInPast = errors.New("create_booking: start date is in the past")

	// ErrUnsupportedResource возвращается, когда склад не продает
	// запрошенное измерение емкости
	ErrUnsupportedResource = errors.New("create_booking: resource type not supported by warehouse")

	// ErrQuantityOutOfRange возвращается, когда количество вне диапазона прайс-листа
	ErrQuantityOutOfRange = errors.New("create_booking: quantity out of schedule range")

	// ErrInsufficientCapacity возвращается, когда свободной емкости
	// не хватает на запрошенное количество
	ErrInsufficientCapacity = errors.New("create_booking: insufficient capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
