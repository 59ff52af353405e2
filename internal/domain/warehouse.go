package domain

import "time"

// ResourceType represents a sellable capacity dimension of a warehouse
type ResourceType string

const (
	// ResourcePallet pallet slots, counted in whole pallets
	ResourcePallet ResourceType = "pallet"
	// ResourceArea floor area, measured in square feet
	ResourceArea ResourceType = "area"
)

// IsValid returns true if the resource type is one of the known dimensions
func (rt ResourceType) IsValid() bool {
	return rt == ResourcePallet || rt == ResourceArea
}

// Warehouse represents a storage facility with capacity in two
// independent dimensions. A dimension with zero capacity is not sellable.
type Warehouse struct {
	ID               int64
	OwnerID          int64
	Name             string
	City             string
	PalletCapacity   int64
	AreaCapacitySqFt float64
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CapacityFor returns the total capacity of the warehouse in the given dimension
func (w *Warehouse) CapacityFor(rt ResourceType) float64 {
	switch rt {
	case ResourcePallet:
		return float64(w.PalletCapacity)
	case ResourceArea:
		return w.AreaCapacitySqFt
	default:
		return 0
	}
}

// SupportsResource returns true if the warehouse has non-zero capacity
// in the given dimension
func (w *Warehouse) SupportsResource(rt ResourceType) bool {
	return w.CapacityFor(rt) > 0
}
