package bookings

import (
	"context"

	"github.com/warehq/WSM-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByWarehouseWithFilter(ctx context.Context, filter domain.WarehouseBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
}

// WarehouseRepository интерфейс репозитория складов
// Нужен для проверки прав менеджера (владельца склада)
type WarehouseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Warehouse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
