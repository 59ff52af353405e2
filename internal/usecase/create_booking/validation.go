package create_booking

import (
	"fmt"
	"math"
	"time"

	"github.com/warehq/WSM-BookingService/internal/domain"
	"github.com/warehq/WSM-BookingService/pkg/dates"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.WarehouseID <= 0 {
		return fmt.Errorf("%w: warehouseID must be positive", ErrInvalidInput)
	}

	if !req.ResourceType.IsValid() {
		return fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, req.ResourceType)
	}

	if req.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	// Паллеты продаются только целыми
	if req.ResourceType == domain.ResourcePallet && req.Quantity != math.Trunc(req.Quantity) {
		return fmt.Errorf("%w: pallet quantity must be a whole number", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if !req.StartDate.Before(req.EndDate) {
		return ErrInvalidRange
	}

	if dates.DaysBetween(req.StartDate, req.EndDate) > domain.MaxBookingDays {
		return fmt.Errorf("%w: booking cannot exceed %d days", ErrInvalidInput, domain.MaxBookingDays)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes cannot exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateStartDate проверяет, что бронирование не начинается в прошлом
// Сравниваются только даты: бронирование с сегодняшней датой начала допустимо
func validateStartDate(startDate, now time.Time) error {
	if dates.Normalize(startDate).Before(dates.Normalize(now)) {
		return ErrStartDateInPast
	}
	return nil
}
