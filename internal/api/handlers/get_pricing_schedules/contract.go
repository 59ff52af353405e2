package get_pricing_schedules

import (
	"context"

	"github.com/warehq/WSM-BookingService/internal/service/pricing/models"
)

type PricingService interface {
	GetSchedules(ctx context.Context, warehouseID int64) (*models.ScheduleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
