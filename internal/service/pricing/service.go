package pricing

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/warehq/WSM-BookingService/internal/domain"
	warehouseRepo "github.com/warehq/WSM-BookingService/internal/infra/storage/warehouse"
	"github.com/warehq/WSM-BookingService/internal/service/pricing/models"
)

// Service сервис для управления прайс-листами складов
type Service struct {
	pricingRepo   PricingRepository
	warehouseRepo WarehouseRepository
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса прайс-листов
func NewService(
	pricingRepo PricingRepository,
	warehouseRepo WarehouseRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		pricingRepo:   pricingRepo,
		warehouseRepo: warehouseRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// GetSchedules получает все прайс-листы склада.
// Публичная операция: клиенту нужны цены до бронирования.
func (s *Service) GetSchedules(ctx context.Context, warehouseID int64) (*models.ScheduleListResponse, error) {
	s.logger.Info("GetSchedules: fetching schedules for warehouse=%d", warehouseID)

	if _, err := s.warehouseRepo.GetByID(ctx, warehouseID); err != nil {
		if errors.Is(err, warehouseRepo.ErrWarehouseNotFound) {
			s.logger.Warn("GetSchedules: warehouse id=%d not found", warehouseID)
			return nil, ErrWarehouseNotFound
		}
		s.logger.Error("GetSchedules: repository error for warehouse=%d: %v", warehouseID, err)
		return nil, fmt.Errorf("%w: GetSchedules - repository error: %v", ErrInternal, err)
	}

	schedules, err := s.pricingRepo.GetByWarehouse(ctx, warehouseID)
	if err != nil {
		s.logger.Error("GetSchedules: repository error for warehouse=%d: %v", warehouseID, err)
		return nil, fmt.Errorf("%w: GetSchedules - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedules: fetched %d schedules for warehouse=%d", len(schedules), warehouseID)
	return models.FromDomainScheduleList(schedules), nil
}

// UpsertSchedule создает или обновляет прайс-лист склада для типа ресурса.
// Доступно только владельцу склада. Пороги скидок заменяются целиком.
func (s *Service) UpsertSchedule(ctx context.Context, req *models.UpsertScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpsertSchedule: warehouse=%d, resource=%s, requester=%d",
		req.WarehouseID, req.ResourceType, req.RequesterID)

	wh, err := s.warehouseRepo.GetByID(ctx, req.WarehouseID)
	if err != nil {
		if errors.Is(err, warehouseRepo.ErrWarehouseNotFound) {
			s.logger.Warn("UpsertSchedule: warehouse id=%d not found", req.WarehouseID)
			return nil, ErrWarehouseNotFound
		}
		s.logger.Error("UpsertSchedule: repository error for warehouse=%d: %v", req.WarehouseID, err)
		return nil, fmt.Errorf("%w: UpsertSchedule - repository error: %v", ErrInternal, err)
	}

	if wh.OwnerID != req.RequesterID {
		s.logger.Warn("UpsertSchedule: requester=%d is not owner of warehouse=%d",
			req.RequesterID, req.WarehouseID)
		return nil, ErrAccessDenied
	}

	schedule, err := s.buildSchedule(wh, req)
	if err != nil {
		s.logger.Warn("UpsertSchedule: validation failed for warehouse=%d: %v", req.WarehouseID, err)
		return nil, err
	}

	// Прайс-лист и пороги скидок меняются в одной транзакции
	var result *domain.PricingSchedule
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		upserted, err := s.pricingRepo.Upsert(txCtx, schedule)
		if err != nil {
			return fmt.Errorf("%w: UpsertSchedule - repository error: %v", ErrInternal, err)
		}
		result = upserted
		return nil
	})
	if err != nil {
		s.logger.Error("UpsertSchedule: failed to upsert schedule for warehouse=%d: %v", req.WarehouseID, err)
		return nil, err
	}

	s.logger.Info("UpsertSchedule: successfully upserted schedule id=%d for warehouse=%d",
		result.ID, req.WarehouseID)
	return models.FromDomainSchedule(result), nil
}

// buildSchedule валидирует запрос и собирает доменный прайс-лист.
// Пороги скидок сортируются по убыванию: в этом порядке их ожидает
// резолюция скидки и в этом порядке они хранятся.
func (s *Service) buildSchedule(wh *domain.Warehouse, req *models.UpsertScheduleRequest) (*domain.PricingSchedule, error) {
	resourceType := domain.ResourceType(req.ResourceType)
	if !resourceType.IsValid() {
		return nil, fmt.Errorf("%w: unknown resource type: %q", ErrInvalidInput, req.ResourceType)
	}

	if wh.CapacityFor(resourceType) <= 0 {
		return nil, ErrUnsupportedResource
	}

	billingUnit := domain.BillingUnit(req.BillingUnit)
	if !billingUnit.IsValid() {
		return nil, fmt.Errorf("%w: unknown billing unit: %q", ErrInvalidInput, req.BillingUnit)
	}

	if !req.BasePrice.IsPositive() {
		return nil, fmt.Errorf("%w: base price must be positive", ErrInvalidInput)
	}

	if req.MinQuantity <= 0 {
		return nil, fmt.Errorf("%w: min quantity must be positive", ErrInvalidInput)
	}

	if req.MaxQuantity < req.MinQuantity {
		return nil, fmt.Errorf("%w: max quantity must be >= min quantity", ErrInvalidInput)
	}

	maxPercent := decimal.NewFromInt(domain.MaxVolumeDiscountPercent)
	seen := make(map[float64]struct{}, len(req.VolumeDiscounts))
	discounts := make([]domain.VolumeDiscount, 0, len(req.VolumeDiscounts))

	for _, tier := range req.VolumeDiscounts {
		if tier.MinQuantity <= 0 {
			return nil, fmt.Errorf("%w: discount threshold must be positive", ErrInvalidInput)
		}
		if tier.Percent.IsNegative() || tier.Percent.GreaterThan(maxPercent) {
			return nil, fmt.Errorf("%w: discount percent must be in [0, 100]", ErrInvalidInput)
		}
		if _, ok := seen[tier.MinQuantity]; ok {
			return nil, fmt.Errorf("%w: duplicate discount threshold %.2f", ErrInvalidInput, tier.MinQuantity)
		}
		seen[tier.MinQuantity] = struct{}{}

		discounts = append(discounts, domain.VolumeDiscount{
			MinQuantity: tier.MinQuantity,
			Percent:     tier.Percent,
		})
	}

	sort.Slice(discounts, func(i, j int) bool {
		return discounts[i].MinQuantity > discounts[j].MinQuantity
	})

	return &domain.PricingSchedule{
		WarehouseID:     req.WarehouseID,
		ResourceType:    resourceType,
		BasePrice:       req.BasePrice,
		BillingUnit:     billingUnit,
		MinQuantity:     req.MinQuantity,
		MaxQuantity:     req.MaxQuantity,
		VolumeDiscounts: discounts,
	}, nil
}
