package check_availability

import (
	"context"
	"time"

	"github.com/warehq/WSM-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetOverlapping возвращает бронирования, занимающие емкость и
	// пересекающие полуоткрытый интервал [startDate, endDate)
	GetOverlapping(ctx context.Context, warehouseID int64, resourceType domain.ResourceType, startDate, endDate time.Time) ([]*domain.Booking, error)
}

// WarehouseRepository интерфейс репозитория складов
type WarehouseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Warehouse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
