package get_warehouse_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/warehq/WSM-BookingService/internal/domain"
	"github.com/warehq/WSM-BookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из параметров URL.
// Все query параметры опциональны.
func ToServiceRequest(
	warehouseID, requesterID int64,
	resourceType, customerIDStr, overlapsStartStr, overlapsEndStr, status, occupancyOnlyStr string,
) (*models.GetWarehouseBookingsRequest, error) {
	req := &models.GetWarehouseBookingsRequest{
		WarehouseID: warehouseID,
		RequesterID: requesterID,
	}

	if resourceType != "" {
		req.ResourceType = &resourceType
	}

	if customerIDStr != "" {
		customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse customerId: %w", err)
		}
		req.CustomerID = &customerID
	}

	if overlapsStartStr != "" || overlapsEndStr != "" {
		// Фильтр пересечения задается только парой дат
		if overlapsStartStr == "" || overlapsEndStr == "" {
			return nil, fmt.Errorf("overlapsStart and overlapsEnd must be provided together")
		}

		overlapsStart, err := time.Parse(domain.DateFormat, overlapsStartStr)
		if err != nil {
			return nil, fmt.Errorf("parse overlapsStart: %w", err)
		}
		overlapsEnd, err := time.Parse(domain.DateFormat, overlapsEndStr)
		if err != nil {
			return nil, fmt.Errorf("parse overlapsEnd: %w", err)
		}
		if !overlapsStart.Before(overlapsEnd) {
			return nil, fmt.Errorf("overlapsEnd must be after overlapsStart")
		}

		req.OverlapsStart = &overlapsStart
		req.OverlapsEnd = &overlapsEnd
	}

	if status != "" {
		req.Status = &status
	}

	if occupancyOnlyStr != "" {
		occupancyOnly, err := strconv.ParseBool(occupancyOnlyStr)
		if err != nil {
			return nil, fmt.Errorf("parse occupancyOnly: %w", err)
		}
		req.OccupancyOnly = occupancyOnly
	}

	return req, nil
}
