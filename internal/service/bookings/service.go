package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/warehq/WSM-BookingService/internal/domain"
	bookingRepo "github.com/warehq/WSM-BookingService/internal/infra/storage/booking"
	warehouseRepo "github.com/warehq/WSM-BookingService/internal/infra/storage/warehouse"
	"github.com/warehq/WSM-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo   BookingRepository
	warehouseRepo WarehouseRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	warehouseRepo WarehouseRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		warehouseRepo: warehouseRepo,
		logger:        logger,
	}
}

// GetByID получает бронирование по ID
// Доступно владельцу бронирования и владельцу склада
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for requester=%d", id, requesterID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkBookingAccess(ctx, booking, requesterID); err != nil {
		s.logger.Warn("GetByID: access denied for requester=%d to booking id=%d", requesterID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d", req.CustomerID)

	// Клиент видит только свои бронирования
	if req.CustomerID != req.RequesterID {
		s.logger.Warn("GetCustomerBookings: requester=%d is not customer=%d", req.RequesterID, req.CustomerID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetWarehouseBookings получает бронирования склада с гибкой фильтрацией
// Доступно только владельцу склада
func (s *Service) GetWarehouseBookings(ctx context.Context, req *models.GetWarehouseBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetWarehouseBookings: fetching bookings for warehouse=%d, requester=%d",
		req.WarehouseID, req.RequesterID)

	if err := s.checkOwnerAccess(ctx, req.WarehouseID, req.RequesterID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetWarehouseBookings: invalid filter for warehouse=%d: %v", req.WarehouseID, err)
		return nil, fmt.Errorf("%w: invalid filter: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetByWarehouseWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetWarehouseBookings: repository error for warehouse=%d: %v", req.WarehouseID, err)
		return nil, fmt.Errorf("%w: GetWarehouseBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWarehouseBookings: fetched %d bookings for warehouse=%d", len(bookings), req.WarehouseID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Клиент может отменить только своё бронирование (cancelled_by_customer)
// Владелец склада может отменить любое бронирование склада (cancelled_by_company)
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by requester=%d", bookingID, req.RequesterID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.BookingStatus

	if booking.CustomerID == req.RequesterID {
		cancelStatus = domain.StatusCancelledByCustomer
	} else {
		if err := s.checkOwnerAccess(ctx, booking.WarehouseID, req.RequesterID); err != nil {
			s.logger.Warn("Cancel: access denied for requester=%d to cancel booking id=%d",
				req.RequesterID, bookingID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByCompany
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// checkBookingAccess проверяет, что пользователь имеет доступ к бронированию:
// владелец бронирования или владелец склада
func (s *Service) checkBookingAccess(ctx context.Context, booking *domain.Booking, requesterID int64) error {
	if booking.CustomerID == requesterID {
		return nil
	}
	return s.checkOwnerAccess(ctx, booking.WarehouseID, requesterID)
}

// checkOwnerAccess проверяет, что пользователь является владельцем склада
func (s *Service) checkOwnerAccess(ctx context.Context, warehouseID, requesterID int64) error {
	wh, err := s.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		if errors.Is(err, warehouseRepo.ErrWarehouseNotFound) {
			return ErrWarehouseNotFound
		}
		return fmt.Errorf("%w: checkOwnerAccess - repository error: %v", ErrInternal, err)
	}

	if wh.OwnerID != requesterID {
		return ErrAccessDenied
	}

	return nil
}
