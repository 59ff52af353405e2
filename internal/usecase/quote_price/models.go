package quote_price

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warehq/WSM-BookingService/internal/domain"
)

// Request модель запроса на расчет цены
type Request struct {
	WarehouseID  int64               // ID склада
	ResourceType domain.ResourceType // Тип ресурса (pallet или area)
	Quantity     float64             // Количество паллет или квадратных футов
	StartDate    time.Time           // Начало интервала (включительно)
	EndDate      time.Time           // Конец интервала (исключительно)
	CustomerID   *int64              // ID клиента для скидки по членству (опционально)
}

// Response модель ответа с построчной разбивкой цены.
// Все промежуточные суммы выводимы из входных данных - счет можно
// отрисовать без пересчета.
type Response struct {
	WarehouseID  int64
	ResourceType domain.ResourceType
	StartDate    time.Time
	EndDate      time.Time

	UnitPrice                 decimal.Decimal
	BillingUnit               domain.BillingUnit
	BillingPeriods            decimal.Decimal
	Quantity                  float64
	BaseAmount                decimal.Decimal
	VolumeDiscountPercent     decimal.Decimal
	VolumeDiscountAmount      decimal.Decimal
	AmountAfterVolume         decimal.Decimal
	MembershipDiscountPercent decimal.Decimal
	MembershipDiscountAmount  decimal.Decimal
	Total                     decimal.Decimal
}

// fromBreakdown конвертирует доменную разбивку в ответ use case
func fromBreakdown(req *Request, b *domain.PricingBreakdown) *Response {
	return &Response{
		WarehouseID:               req.WarehouseID,
		ResourceType:              req.ResourceType,
		StartDate:                 req.StartDate,
		EndDate:                   req.EndDate,
		UnitPrice:                 b.UnitPrice,
		BillingUnit:               b.BillingUnit,
		BillingPeriods:            b.BillingPeriods,
		Quantity:                  b.Quantity,
		BaseAmount:                b.BaseAmount,
		VolumeDiscountPercent:     b.VolumeDiscountPercent,
		VolumeDiscountAmount:      b.VolumeDiscountAmount,
		AmountAfterVolume:         b.AmountAfterVolume,
		MembershipDiscountPercent: b.MembershipDiscountPercent,
		MembershipDiscountAmount:  b.MembershipDiscountAmount,
		Total:                     b.Total,
	}
}
