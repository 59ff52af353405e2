package check_availability

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.WarehouseID <= 0 {
		return fmt.Errorf("%w: warehouseID must be positive", ErrInvalidInput)
	}

	if !req.ResourceType.IsValid() {
		return fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, req.ResourceType)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	// Интервал полуоткрытый [start, end), пустой интервал не имеет смысла
	if !req.StartDate.Before(req.EndDate) {
		return ErrInvalidRange
	}

	return nil
}
