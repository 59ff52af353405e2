package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPendingPayment      BookingStatus = "pending_payment"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusActive              BookingStatus = "active"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByCustomer BookingStatus = "cancelled_by_customer"
	StatusCancelledByCompany  BookingStatus = "cancelled_by_company"
	StatusExpired             BookingStatus = "expired"
)

// Booking represents a warehouse storage booking.
// The date interval is half-open [StartDate, EndDate): a booking ending on
// day D and a booking starting on day D do not overlap.
type Booking struct {
	ID           int64
	WarehouseID  int64
	CustomerID   int64
	ResourceType ResourceType
	Quantity     float64 // pallet count or square footage, matching ResourceType
	StartDate    time.Time
	EndDate      time.Time
	Status       BookingStatus

	// Denormalized pricing snapshot, frozen at admission time so the
	// invoice never drifts from the quoted price
	UnitPrice                decimal.Decimal
	BillingUnit              BillingUnit
	BillingPeriods           decimal.Decimal
	BaseAmount               decimal.Decimal
	VolumeDiscountAmount     decimal.Decimal
	MembershipDiscountAmount decimal.Decimal
	TotalPrice               decimal.Decimal

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesCapacity returns true if the booking counts toward warehouse
// occupancy. Pending (unpaid) and terminal bookings do not consume capacity.
func (b *Booking) OccupiesCapacity() bool {
	return b.Status == StatusConfirmed || b.Status == StatusActive
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPendingPayment ||
		b.Status == StatusConfirmed ||
		b.Status == StatusActive
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByCustomer || b.Status == StatusCancelledByCompany
}

// WarehouseBookingsFilter фильтр для получения бронирований склада
type WarehouseBookingsFilter struct {
	WarehouseID   int64          // Обязательный параметр
	ResourceType  *ResourceType  // Фильтр по типу ресурса (опционально)
	CustomerID    *int64         // Фильтр по клиенту (опционально)
	OverlapsStart *time.Time     // Начало окна пересечения (опционально)
	OverlapsEnd   *time.Time     // Конец окна пересечения (опционально)
	Status        *BookingStatus // Фильтр по статусу (опционально)
	OccupancyOnly bool           // Только бронирования, занимающие емкость
}
