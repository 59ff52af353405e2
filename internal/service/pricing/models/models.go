package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warehq/WSM-BookingService/internal/domain"
)

// VolumeDiscountTier порог скидки за объем
type VolumeDiscountTier struct {
	MinQuantity float64         `json:"minQuantity"`
	Percent     decimal.Decimal `json:"percent"`
}

// ScheduleResponse модель прайс-листа для HTTP ответов
type ScheduleResponse struct {
	ID              int64                `json:"id"`
	WarehouseID     int64                `json:"warehouseId"`
	ResourceType    string               `json:"resourceType"`
	BasePrice       string               `json:"basePrice"`
	BillingUnit     string               `json:"billingUnit"`
	MinQuantity     float64              `json:"minQuantity"`
	MaxQuantity     float64              `json:"maxQuantity"`
	VolumeDiscounts []VolumeDiscountTier `json:"volumeDiscounts"`
	CreatedAt       string               `json:"createdAt"`
	UpdatedAt       string               `json:"updatedAt"`
}

// ScheduleListResponse список прайс-листов склада
type ScheduleListResponse struct {
	Schedules []*ScheduleResponse `json:"schedules"`
	Total     int                 `json:"total"`
}

// UpsertScheduleRequest запрос на создание/обновление прайс-листа
type UpsertScheduleRequest struct {
	WarehouseID     int64
	RequesterID     int64 // Кто запрашивает (должен быть владельцем склада)
	ResourceType    string
	BasePrice       decimal.Decimal
	BillingUnit     string
	MinQuantity     float64
	MaxQuantity     float64
	VolumeDiscounts []VolumeDiscountTier
}

// FromDomainSchedule конвертирует доменный прайс-лист в модель ответа
func FromDomainSchedule(s *domain.PricingSchedule) *ScheduleResponse {
	tiers := make([]VolumeDiscountTier, len(s.VolumeDiscounts))
	for i, d := range s.VolumeDiscounts {
		tiers[i] = VolumeDiscountTier{
			MinQuantity: d.MinQuantity,
			Percent:     d.Percent,
		}
	}

	return &ScheduleResponse{
		ID:              s.ID,
		WarehouseID:     s.WarehouseID,
		ResourceType:    string(s.ResourceType),
		BasePrice:       s.BasePrice.StringFixed(2),
		BillingUnit:     string(s.BillingUnit),
		MinQuantity:     s.MinQuantity,
		MaxQuantity:     s.MaxQuantity,
		VolumeDiscounts: tiers,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainScheduleList конвертирует список доменных прайс-листов
func FromDomainScheduleList(schedules []*domain.PricingSchedule) *ScheduleListResponse {
	result := make([]*ScheduleResponse, len(schedules))
	for i, s := range schedules {
		result[i] = FromDomainSchedule(s)
	}
	return &ScheduleListResponse{
		Schedules: result,
		Total:     len(result),
	}
}
