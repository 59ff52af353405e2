package update_pricing_schedule

import (
	"context"

	"github.com/warehq/WSM-BookingService/internal/service/pricing/models"
)

type PricingService interface {
	UpsertSchedule(ctx context.Context, req *models.UpsertScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
