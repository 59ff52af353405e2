package check_availability

import (
	"fmt"
	"time"

	"github.com/warehq/WSM-BookingService/internal/domain"
	checkAvailability "github.com/warehq/WSM-BookingService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	WarehouseID       int64   `json:"warehouseId"`
	ResourceType      string  `json:"resourceType"`
	StartDate         string  `json:"startDate"`
	EndDate           string  `json:"endDate"`
	TotalCapacity     float64 `json:"totalCapacity"`
	OccupiedCapacity  float64 `json:"occupiedCapacity"`
	AvailableCapacity float64 `json:"availableCapacity"`
}

// ToUseCaseRequest собирает запрос use case из параметров URL
func ToUseCaseRequest(warehouseID int64, resourceType, startDateStr, endDateStr string) (*checkAvailability.Request, error) {
	if resourceType == "" {
		return nil, fmt.Errorf("missing resourceType parameter")
	}

	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, fmt.Errorf("parse startDate: %w", err)
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, fmt.Errorf("parse endDate: %w", err)
	}

	return &checkAvailability.Request{
		WarehouseID:  warehouseID,
		ResourceType: domain.ResourceType(resourceType),
		StartDate:    startDate,
		EndDate:      endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		WarehouseID:       resp.WarehouseID,
		ResourceType:      string(resp.ResourceType),
		StartDate:         resp.StartDate.Format(domain.DateFormat),
		EndDate:           resp.EndDate.Format(domain.DateFormat),
		TotalCapacity:     resp.TotalCapacity,
		OccupiedCapacity:  resp.OccupiedCapacity,
		AvailableCapacity: resp.AvailableCapacity,
	}
}
