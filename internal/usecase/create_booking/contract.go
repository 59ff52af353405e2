package create_booking

import (
	"context"
	"time"

	"github.com/warehq/WSM-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetOverlapping(ctx context.Context, warehouseID int64, resourceType domain.ResourceType, startDate, endDate time.Time) ([]*domain.Booking, error)
}

// WarehouseRepository интерфейс репозитория складов
type WarehouseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Warehouse, error)
}

// PricingRepository интерфейс репозитория прайс-листов
type PricingRepository interface {
	GetByWarehouseAndResource(ctx context.Context, warehouseID int64, resourceType domain.ResourceType) (*domain.PricingSchedule, error)
}

// MembershipClient интерфейс клиента для MembershipService
type MembershipClient interface {
	GetDiscountPercent(ctx context.Context, customerID int64) (float64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
