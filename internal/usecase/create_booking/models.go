package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warehq/WSM-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID   int64               // ID клиента
	WarehouseID  int64               // ID склада
	ResourceType domain.ResourceType // Тип ресурса (pallet или area)
	Quantity     float64             // Количество паллет или квадратных футов
	StartDate    time.Time           // Начало интервала (включительно)
	EndDate      time.Time           // Конец интервала (исключительно)
	Notes        *string             // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием и снапшотом цены
type Response struct {
	ID           int64
	CustomerID   int64
	WarehouseID  int64
	ResourceType domain.ResourceType
	Quantity     float64
	StartDate    time.Time
	EndDate      time.Time
	Status       string

	// Снапшот цены, зафиксированный на момент допуска
	UnitPrice                decimal.Decimal
	BillingUnit              domain.BillingUnit
	BillingPeriods           decimal.Decimal
	BaseAmount               decimal.Decimal
	VolumeDiscountAmount     decimal.Decimal
	MembershipDiscountAmount decimal.Decimal
	TotalPrice               decimal.Decimal

	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomainBooking конвертирует доменное бронирование в ответ use case
func fromDomainBooking(b *domain.Booking) *Response {
	return &Response{
		ID:                       b.ID,
		CustomerID:               b.CustomerID,
		WarehouseID:              b.WarehouseID,
		ResourceType:             b.ResourceType,
		Quantity:                 b.Quantity,
		StartDate:                b.StartDate,
		EndDate:                  b.EndDate,
		Status:                   string(b.Status),
		UnitPrice:                b.UnitPrice,
		BillingUnit:              b.BillingUnit,
		BillingPeriods:           b.BillingPeriods,
		BaseAmount:               b.BaseAmount,
		VolumeDiscountAmount:     b.VolumeDiscountAmount,
		MembershipDiscountAmount: b.MembershipDiscountAmount,
		TotalPrice:               b.TotalPrice,
		Notes:                    b.Notes,
		CreatedAt:                b.CreatedAt,
		UpdatedAt:                b.UpdatedAt,
	}
}
