package quote_price

import "errors"

var (
	// ErrInvalidRange возвращается, когда дата окончания не позже даты начала
	ErrInvalidRange = errors.New("quote_price: end date must be after start date")

	// ErrUnsupportedResource возвращается, когда для склада и типа ресурса
	// нет прайс-листа (измерение не продается)
	ErrUnsupportedResource = errors.New("quote_price: resource type not supported by warehouse")

	// ErrQuantityOutOfRange возвращается, когда количество вне допустимого
	// диапазона прайс-листа (границы включительно)
	ErrQuantityOutOfRange = errors.New("quote_price: quantity out of schedule range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_price: internal error")
)
