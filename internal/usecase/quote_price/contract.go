package quote_price

import (
	"context"

	"github.com/warehq/WSM-BookingService/internal/domain"
)

// PricingRepository интерфейс репозитория прайс-листов
type PricingRepository interface {
	GetByWarehouseAndResource(ctx context.Context, warehouseID int64, resourceType domain.ResourceType) (*domain.PricingSchedule, error)
}

// MembershipClient интерфейс клиента для MembershipService
// Возвращает 0 при отсутствии программы лояльности
type MembershipClient interface {
	GetDiscountPercent(ctx context.Context, customerID int64) (float64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
