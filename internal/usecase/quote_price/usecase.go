package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warehq/WSM-BookingService/internal/domain"
	pricingRepo "github.com/warehq/WSM-BookingService/internal/infra/storage/pricing"
)

// UseCase use case расчета цены бронирования
//
// Детерминированное чистое вычисление: одинаковые входные данные дают
// побайтово одинаковую разбивку. Никаких скрытых зависимостей от часов
// или генераторов случайных чисел - даты приходят аргументами.
type UseCase struct {
	pricingRepo      PricingRepository
	membershipClient MembershipClient
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pricingRepo PricingRepository,
	membershipClient MembershipClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		pricingRepo:      pricingRepo,
		membershipClient: membershipClient,
		logger:           logger,
	}
}

// Execute выполняет use case расчета цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrice: warehouse=%d, resource=%s, quantity=%.2f, range=[%s, %s)",
		req.WarehouseID, req.ResourceType, req.Quantity,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем прайс-лист
	// Отсутствие прайс-листа означает, что измерение не продается -
	// это ошибка конфигурации запроса, а не повод молча посчитать по нулям
	schedule, err := uc.pricingRepo.GetByWarehouseAndResource(ctx, req.WarehouseID, req.ResourceType)
	if err != nil {
		if errors.Is(err, pricingRepo.ErrScheduleNotFound) {
			uc.logger.Warn("QuotePrice: no schedule for warehouse=%d, resource=%s",
				req.WarehouseID, req.ResourceType)
			return nil, ErrUnsupportedResource
		}
		uc.logger.Error("QuotePrice: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 3. Проверяем количество против диапазона прайс-листа
	if !schedule.QuantityInRange(req.Quantity) {
		uc.logger.Warn("QuotePrice: quantity %.2f outside [%.2f, %.2f] for warehouse=%d, resource=%s",
			req.Quantity, schedule.MinQuantity, schedule.MaxQuantity, req.WarehouseID, req.ResourceType)
		return nil, fmt.Errorf("%w: quantity %.2f not in [%.2f, %.2f]",
			ErrQuantityOutOfRange, req.Quantity, schedule.MinQuantity, schedule.MaxQuantity)
	}

	// 4. Получаем скидку по членству (0, если клиент не указан или без программы)
	membershipPercent := decimal.Zero
	if req.CustomerID != nil {
		percent, err := uc.membershipClient.GetDiscountPercent(ctx, *req.CustomerID)
		if err != nil {
			uc.logger.Error("QuotePrice: failed to get membership discount for customer=%d: %v",
				*req.CustomerID, err)
			return nil, fmt.Errorf("%w: failed to get membership discount: %v", ErrInternal, err)
		}
		membershipPercent = decimal.NewFromFloat(percent)
	}

	// 5. Считаем разбивку цены
	breakdown := domain.CalculateBreakdown(schedule, req.Quantity, req.StartDate, req.EndDate, membershipPercent)

	uc.logger.Info("QuotePrice: warehouse=%d, resource=%s: base=%s, volume=-%s, membership=-%s, total=%s",
		req.WarehouseID, req.ResourceType,
		breakdown.BaseAmount.StringFixed(2), breakdown.VolumeDiscountAmount.StringFixed(2),
		breakdown.MembershipDiscountAmount.StringFixed(2), breakdown.Total.StringFixed(2))

	return fromBreakdown(req, breakdown), nil
}
