package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/warehq/WSM-BookingService/internal/domain"
	warehouseRepo "github.com/warehq/WSM-BookingService/internal/infra/storage/warehouse"
)

// UseCase use case проверки доступной емкости склада
//
// Чистое вычисление над данными репозиториев, без побочных эффектов.
// Результат - снапшот, а не резервация: admission workflow повторяет
// этот же расчет внутри сериализуемой транзакции.
type UseCase struct {
	bookingRepo   BookingRepository
	warehouseRepo WarehouseRepository
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	warehouseRepo WarehouseRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		warehouseRepo: warehouseRepo,
		logger:        logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: warehouse=%d, resource=%s, range=[%s, %s)",
		req.WarehouseID, req.ResourceType,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем склад
	wh, err := uc.warehouseRepo.GetByID(ctx, req.WarehouseID)
	if err != nil {
		if errors.Is(err, warehouseRepo.ErrWarehouseNotFound) {
			uc.logger.Warn("CheckAvailability: warehouse id=%d not found", req.WarehouseID)
			return nil, ErrWarehouseNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get warehouse id=%d: %v", req.WarehouseID, err)
		return nil, fmt.Errorf("%w: failed to get warehouse: %v", ErrInternal, err)
	}

	// 3. Проверяем, что склад продает запрошенное измерение
	totalCapacity := wh.CapacityFor(req.ResourceType)
	if totalCapacity <= 0 {
		uc.logger.Warn("CheckAvailability: warehouse id=%d does not support resource=%s",
			req.WarehouseID, req.ResourceType)
		return nil, ErrUnsupportedResource
	}

	// 4. Получаем пересекающиеся бронирования, занимающие емкость
	bookings, err := uc.bookingRepo.GetOverlapping(ctx, req.WarehouseID, req.ResourceType, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get overlapping bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Считаем занятую емкость (консервативная сумма всех пересекающихся)
	occupied := domain.OccupiedCapacity(bookings, req.StartDate, req.EndDate)
	result := domain.NewAvailabilityResult(totalCapacity, occupied)

	uc.logger.Info("CheckAvailability: warehouse=%d, resource=%s: total=%.2f, occupied=%.2f, available=%.2f",
		req.WarehouseID, req.ResourceType,
		result.TotalCapacity, result.OccupiedCapacity, result.AvailableCapacity)

	return &Response{
		WarehouseID:       req.WarehouseID,
		ResourceType:      req.ResourceType,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		TotalCapacity:     result.TotalCapacity,
		OccupiedCapacity:  result.OccupiedCapacity,
		AvailableCapacity: result.AvailableCapacity,
	}, nil
}
