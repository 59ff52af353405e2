package pricing

import (
	"context"

	"github.com/warehq/WSM-BookingService/internal/domain"
)

// PricingRepository интерфейс репозитория прайс-листов
type PricingRepository interface {
	GetByWarehouse(ctx context.Context, warehouseID int64) ([]*domain.PricingSchedule, error)
	Upsert(ctx context.Context, schedule *domain.PricingSchedule) (*domain.PricingSchedule, error)
}

// WarehouseRepository интерфейс репозитория складов
// Нужен для проверки прав владельца склада
type WarehouseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Warehouse, error)
}

// TransactionManager интерфейс менеджера транзакций.
// Upsert прайс-листа меняет две таблицы и должен выполняться атомарно.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
