package get_warehouse_bookings

import (
	"context"

	"github.com/warehq/WSM-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetWarehouseBookings(ctx context.Context, req *models.GetWarehouseBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
