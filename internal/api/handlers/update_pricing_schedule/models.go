package update_pricing_schedule

import (
	"github.com/shopspring/decimal"

	"github.com/warehq/WSM-BookingService/internal/service/pricing/models"
)

// VolumeDiscountTier порог скидки за объем в теле запроса
type VolumeDiscountTier struct {
	MinQuantity float64         `json:"minQuantity"`
	Percent     decimal.Decimal `json:"percent"`
}

// UpsertScheduleRequest HTTP request model
type UpsertScheduleRequest struct {
	ResourceType    string               `json:"resourceType"`
	BasePrice       decimal.Decimal      `json:"basePrice"`
	BillingUnit     string               `json:"billingUnit"`
	MinQuantity     float64              `json:"minQuantity"`
	MaxQuantity     float64              `json:"maxQuantity"`
	VolumeDiscounts []VolumeDiscountTier `json:"volumeDiscounts"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса.
// RequesterID приходит из контекста аутентификации, не из тела запроса.
func (r *UpsertScheduleRequest) ToServiceRequest(warehouseID, requesterID int64) *models.UpsertScheduleRequest {
	tiers := make([]models.VolumeDiscountTier, len(r.VolumeDiscounts))
	for i, tier := range r.VolumeDiscounts {
		tiers[i] = models.VolumeDiscountTier{
			MinQuantity: tier.MinQuantity,
			Percent:     tier.Percent,
		}
	}

	return &models.UpsertScheduleRequest{
		WarehouseID:     warehouseID,
		RequesterID:     requesterID,
		ResourceType:    r.ResourceType,
		BasePrice:       r.BasePrice,
		BillingUnit:     r.BillingUnit,
		MinQuantity:     r.MinQuantity,
		MaxQuantity:     r.MaxQuantity,
		VolumeDiscounts: tiers,
	}
}
