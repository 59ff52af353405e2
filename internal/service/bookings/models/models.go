package models

import (
	"fmt"
	"time"

	"github.com/warehq/WSM-BookingService/internal/domain"
)

// BookingResponse модель бронирования для HTTP ответов.
// Денежные поля сериализуются строками с двумя знаками после запятой.
type BookingResponse struct {
	ID           int64   `json:"id"`
	CustomerID   int64   `json:"customerId"`
	WarehouseID  int64   `json:"warehouseId"`
	ResourceType string  `json:"resourceType"`
	Quantity     float64 `json:"quantity"`
	StartDate    string  `json:"startDate"` // "2026-03-01"
	EndDate      string  `json:"endDate"`   // "2026-05-30" (исключительно)
	Status       string  `json:"status"`

	// Снапшот цены, зафиксированный при создании бронирования
	UnitPrice                string `json:"unitPrice"`
	BillingUnit              string `json:"billingUnit"`
	BillingPeriods           string `json:"billingPeriods"`
	BaseAmount               string `json:"baseAmount"`
	VolumeDiscountAmount     string `json:"volumeDiscountAmount"`
	MembershipDiscountAmount string `json:"membershipDiscountAmount"`
	TotalPrice               string `json:"totalPrice"`

	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// GetCustomerBookingsRequest запрос истории бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerID  int64
	RequesterID int64   // Кто запрашивает (должен совпадать с CustomerID)
	Status      *string // Фильтр по статусу (опционально)
}

// GetWarehouseBookingsRequest запрос бронирований склада с фильтрацией
type GetWarehouseBookingsRequest struct {
	WarehouseID   int64
	RequesterID   int64 // Кто запрашивает (должен быть владельцем склада)
	ResourceType  *string
	CustomerID    *int64
	OverlapsStart *time.Time
	OverlapsEnd   *time.Time
	Status        *string
	OccupancyOnly bool
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *GetWarehouseBookingsRequest) ToDomainFilter() (domain.WarehouseBookingsFilter, error) {
	filter := domain.WarehouseBookingsFilter{
		WarehouseID:   r.WarehouseID,
		CustomerID:    r.CustomerID,
		OverlapsStart: r.OverlapsStart,
		OverlapsEnd:   r.OverlapsEnd,
		OccupancyOnly: r.OccupancyOnly,
	}

	if r.ResourceType != nil {
		rt := domain.ResourceType(*r.ResourceType)
		if !rt.IsValid() {
			return domain.WarehouseBookingsFilter{}, fmt.Errorf("unknown resource type: %q", *r.ResourceType)
		}
		filter.ResourceType = &rt
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.WarehouseBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	RequesterID        int64
	CancellationReason string
}

// ToDomainBookingStatus конвертирует строку в доменный статус бронирования
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	switch status {
	case domain.StatusPendingPayment,
		domain.StatusConfirmed,
		domain.StatusActive,
		domain.StatusCompleted,
		domain.StatusCancelledByCustomer,
		domain.StatusCancelledByCompany,
		domain.StatusExpired:
		return status, nil
	default:
		return "", fmt.Errorf("unknown booking status: %q", s)
	}
}

// FromDomainBooking конвертирует доменное бронирование в модель ответа
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	var cancelledAt *string
	if b.CancelledAt != nil {
		formatted := b.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &BookingResponse{
		ID:                       b.ID,
		CustomerID:               b.CustomerID,
		WarehouseID:              b.WarehouseID,
		ResourceType:             string(b.ResourceType),
		Quantity:                 b.Quantity,
		StartDate:                b.StartDate.Format(domain.DateFormat),
		EndDate:                  b.EndDate.Format(domain.DateFormat),
		Status:                   string(b.Status),
		UnitPrice:                b.UnitPrice.StringFixed(2),
		BillingUnit:              string(b.BillingUnit),
		BillingPeriods:           b.BillingPeriods.String(),
		BaseAmount:               b.BaseAmount.StringFixed(2),
		VolumeDiscountAmount:     b.VolumeDiscountAmount.StringFixed(2),
		MembershipDiscountAmount: b.MembershipDiscountAmount.StringFixed(2),
		TotalPrice:               b.TotalPrice.StringFixed(2),
		Notes:                    b.Notes,
		CancellationReason:       b.CancellationReason,
		CancelledAt:              cancelledAt,
		CreatedAt:                b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
