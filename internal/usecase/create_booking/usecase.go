package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warehq/WSM-BookingService/internal/domain"
	pricingRepo "github.com/warehq/WSM-BookingService/internal/infra/storage/pricing"
	warehouseRepo "github.com/warehq/WSM-BookingService/internal/infra/storage/warehouse"
)

// UseCase use case создания бронирования (admission workflow)
//
// Проверка доступности сама по себе - только снапшот. Гонку
// "проверили - записали" между конкурентными запросами закрывает
// сериализуемая транзакция: пересчет занятости и вставка происходят
// атомарно, под FOR UPDATE на пересекающихся бронированиях, и при
// конфликте сериализации поздний писатель повторяется против уже
// зафиксированного состояния.
type UseCase struct {
	bookingRepo      BookingRepository
	warehouseRepo    WarehouseRepository
	pricingRepo      PricingRepository
	membershipClient MembershipClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	warehouseRepo WarehouseRepository,
	pricingRepo PricingRepository,
	membershipClient MembershipClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		warehouseRepo:    warehouseRepo,
		pricingRepo:      pricingRepo,
		membershipClient: membershipClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, warehouse=%d, resource=%s, quantity=%.2f, range=[%s, %s)",
		req.CustomerID, req.WarehouseID, req.ResourceType, req.Quantity,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем дату начала
	now := uc.timeProvider.Now()
	if err := validateStartDate(req.StartDate, now); err != nil {
		uc.logger.Warn("CreateBooking: start date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем склад
	wh, err := uc.warehouseRepo.GetByID(ctx, req.WarehouseID)
	if err != nil {
		if errors.Is(err, warehouseRepo.ErrWarehouseNotFound) {
			uc.logger.Warn("CreateBooking: warehouse id=%d not found", req.WarehouseID)
			return nil, ErrWarehouseNotFound
		}
		uc.logger.Error("CreateBooking: failed to get warehouse id=%d: %v", req.WarehouseID, err)
		return nil, fmt.Errorf("%w: failed to get warehouse: %v", ErrInternal, err)
	}

	if !wh.IsActive {
		uc.logger.Warn("CreateBooking: warehouse id=%d is not active", req.WarehouseID)
		return nil, ErrWarehouseInactive
	}

	totalCapacity := wh.CapacityFor(req.ResourceType)
	if totalCapacity <= 0 {
		uc.logger.Warn("CreateBooking: warehouse id=%d does not support resource=%s",
			req.WarehouseID, req.ResourceType)
		return nil, ErrUnsupportedResource
	}

	// 4. Получаем прайс-лист и проверяем количество
	schedule, err := uc.pricingRepo.GetByWarehouseAndResource(ctx, req.WarehouseID, req.ResourceType)
	if err != nil {
		if errors.Is(err, pricingRepo.ErrScheduleNotFound) {
			uc.logger.Warn("CreateBooking: no schedule for warehouse=%d, resource=%s",
				req.WarehouseID, req.ResourceType)
			return nil, ErrUnsupportedResource
		}
		uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if !schedule.QuantityInRange(req.Quantity) {
		uc.logger.Warn("CreateBooking: quantity %.2f outside [%.2f, %.2f]",
			req.Quantity, schedule.MinQuantity, schedule.MaxQuantity)
		return nil, fmt.Errorf("%w: quantity %.2f not in [%.2f, %.2f]",
			ErrQuantityOutOfRange, req.Quantity, schedule.MinQuantity, schedule.MaxQuantity)
	}

	// 5. Получаем скидку по членству (вне транзакции - внешний вызов
	// не должен удерживать блокировки)
	percent, err := uc.membershipClient.GetDiscountPercent(ctx, req.CustomerID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get membership discount for customer=%d: %v",
			req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get membership discount: %v", ErrInternal, err)
	}
	membershipPercent := decimal.NewFromFloat(percent)

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Проверка доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Перечитываем пересекающиеся бронирования с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetOverlapping(txCtx, req.WarehouseID, req.ResourceType, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Проверяем доступность (та же консервативная сумма, что и в
		// check_availability - расхождение этих расчетов было бы багом)
		occupied := domain.OccupiedCapacity(bookings, req.StartDate, req.EndDate)
		availability := domain.NewAvailabilityResult(totalCapacity, occupied)

		if req.Quantity > availability.AvailableCapacity {
			uc.logger.Warn("CreateBooking: insufficient capacity: requested=%.2f, available=%.2f (total=%.2f, occupied=%.2f)",
				req.Quantity, availability.AvailableCapacity, totalCapacity, occupied)
			return ErrInsufficientCapacity
		}

		uc.logger.Info("CreateBooking: capacity ok: requested=%.2f, available=%.2f",
			req.Quantity, availability.AvailableCapacity)

		// 6.3. Считаем цену и фиксируем снапшот в бронировании
		breakdown := domain.CalculateBreakdown(schedule, req.Quantity, req.StartDate, req.EndDate, membershipPercent)

		booking := &domain.Booking{
			WarehouseID:  req.WarehouseID,
			CustomerID:   req.CustomerID,
			ResourceType: req.ResourceType,
			Quantity:     req.Quantity,
			StartDate:    req.StartDate,
			EndDate:      req.EndDate,
			Status:       domain.StatusConfirmed,
			// Снапшот цены: счет никогда не разойдется с котировкой
			UnitPrice:                breakdown.UnitPrice,
			BillingUnit:              breakdown.BillingUnit,
			BillingPeriods:           breakdown.BillingPeriods,
			BaseAmount:               breakdown.BaseAmount,
			VolumeDiscountAmount:     breakdown.VolumeDiscountAmount,
			MembershipDiscountAmount: breakdown.MembershipDiscountAmount,
			TotalPrice:               breakdown.Total,
			Notes:                    req.Notes,
		}

		// 6.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%s",
		result.ID, result.TotalPrice.StringFixed(2))

	return fromDomainBooking(result), nil
}
