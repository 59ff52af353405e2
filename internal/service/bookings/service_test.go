package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehq/WSM-BookingService/internal/domain"
	bookingRepo "github.com/warehq/WSM-BookingService/internal/infra/storage/booking"
	warehouseRepo "github.com/warehq/WSM-BookingService/internal/infra/storage/warehouse"
	"github.com/warehq/WSM-BookingService/internal/service/bookings/models"
	"github.com/warehq/WSM-BookingService/pkg/dates"
)

type fakeBookingRepo struct {
	booking  *domain.Booking
	bookings []*domain.Booking
	getErr   error

	cancelledID     int64
	cancelledStatus domain.BookingStatus
	cancelledReason string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByCustomerID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) GetByWarehouseWithFilter(_ context.Context, _ domain.WarehouseBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, status domain.BookingStatus, reason string) error {
	f.cancelledID = id
	f.cancelledStatus = status
	f.cancelledReason = reason
	return nil
}

type fakeWarehouseRepo struct {
	warehouse *domain.Warehouse
	err       error
}

func (f *fakeWarehouseRepo) GetByID(_ context.Context, _ int64) (*domain.Warehouse, error) {
	return f.warehouse, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const (
	customerID  = int64(7)
	ownerID     = int64(1)
	strangerID  = int64(99)
	warehouseID = int64(10)
)

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:           42,
		WarehouseID:  warehouseID,
		CustomerID:   customerID,
		ResourceType: domain.ResourcePallet,
		Quantity:     50,
		StartDate:    dates.Day(2026, time.March, 1),
		EndDate:      dates.Day(2026, time.May, 30),
		Status:       domain.StatusConfirmed,
	}
}

func warehouse() *domain.Warehouse {
	return &domain.Warehouse{
		ID:             warehouseID,
		OwnerID:        ownerID,
		Name:           "Central Storage",
		PalletCapacity: 100,
		IsActive:       true,
	}
}

func TestGetByID_OwnerAndCustomerHaveAccess(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{booking: confirmedBooking()},
		&fakeWarehouseRepo{warehouse: warehouse()},
		noopLogger{},
	)

	// Владелец бронирования
	resp, err := svc.GetByID(context.Background(), 42, customerID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)

	// Владелец склада
	resp, err = svc.GetByID(context.Background(), 42, ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{booking: confirmedBooking()},
		&fakeWarehouseRepo{warehouse: warehouse()},
		noopLogger{},
	)

	_, err := svc.GetByID(context.Background(), 42, strangerID)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound},
		&fakeWarehouseRepo{warehouse: warehouse()},
		noopLogger{},
	)

	_, err := svc.GetByID(context.Background(), 42, customerID)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetCustomerBookings_OnlyOwnHistory(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking()}},
		&fakeWarehouseRepo{warehouse: warehouse()},
		noopLogger{},
	)

	// Свои бронирования доступны
	resp, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		CustomerID:  customerID,
		RequesterID: customerID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	// Чужая история недоступна
	_, err = svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		CustomerID:  customerID,
		RequesterID: strangerID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetWarehouseBookings_OnlyOwner(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking()}},
		&fakeWarehouseRepo{warehouse: warehouse()},
		noopLogger{},
	)

	resp, err := svc.GetWarehouseBookings(context.Background(), &models.GetWarehouseBookingsRequest{
		WarehouseID: warehouseID,
		RequesterID: ownerID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.GetWarehouseBookings(context.Background(), &models.GetWarehouseBookingsRequest{
		WarehouseID: warehouseID,
		RequesterID: customerID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_ByCustomerSetsCustomerStatus(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, &fakeWarehouseRepo{warehouse: warehouse()}, noopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		RequesterID:        customerID,
		CancellationReason: "plans changed",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByCustomer, repo.cancelledStatus)
	assert.Equal(t, "plans changed", repo.cancelledReason)
}

func TestCancel_ByWarehouseOwnerSetsCompanyStatus(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, &fakeWarehouseRepo{warehouse: warehouse()}, noopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		RequesterID:        ownerID,
		CancellationReason: "maintenance",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByCompany, repo.cancelledStatus)
}

func TestCancel_StrangerDenied(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, &fakeWarehouseRepo{warehouse: warehouse()}, noopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		RequesterID: strangerID,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)
}

func TestCancel_TerminalStatusRejected(t *testing.T) {
	tests := []struct {
		name   string
		status domain.BookingStatus
	}{
		{name: "completed", status: domain.StatusCompleted},
		{name: "already cancelled", status: domain.StatusCancelledByCustomer},
		{name: "expired", status: domain.StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := confirmedBooking()
			b.Status = tt.status
			svc := NewService(&fakeBookingRepo{booking: b}, &fakeWarehouseRepo{warehouse: warehouse()}, noopLogger{})

			err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
				RequesterID: customerID,
			})

			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestCancel_ReasonTooLong(t *testing.T) {
	svc := NewService(&fakeBookingRepo{booking: confirmedBooking()}, &fakeWarehouseRepo{warehouse: warehouse()}, noopLogger{})

	longReason := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range longReason {
		longReason[i] = 'x'
	}

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		RequesterID:        customerID,
		CancellationReason: string(longReason),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_WarehouseLookupFails(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{booking: confirmedBooking()},
		&fakeWarehouseRepo{err: warehouseRepo.ErrWarehouseNotFound},
		noopLogger{},
	)

	// Доступ не владельца бронирования требует проверки склада
	_, err := svc.GetByID(context.Background(), 42, strangerID)

	assert.ErrorIs(t, err, ErrWarehouseNotFound)
}
