package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehq/WSM-BookingService/internal/domain"
	warehouseRepo "github.com/warehq/WSM-BookingService/internal/infra/storage/warehouse"
	"github.com/warehq/WSM-BookingService/pkg/dates"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetOverlapping(_ context.Context, _ int64, _ domain.ResourceType, _, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
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

func activeWarehouse() *domain.Warehouse {
	return &domain.Warehouse{
		ID:               10,
		OwnerID:          1,
		Name:             "Central Storage",
		City:             "Chicago",
		PalletCapacity:   100,
		AreaCapacitySqFt: 5000,
		IsActive:         true,
	}
}

func confirmedBooking(quantity float64, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		WarehouseID:  10,
		ResourceType: domain.ResourcePallet,
		Quantity:     quantity,
		StartDate:    start,
		EndDate:      end,
		Status:       domain.StatusConfirmed,
	}
}

func TestExecute_AvailabilityRemainder(t *testing.T) {
	queryStart := dates.Day(2026, time.March, 1)
	queryEnd := dates.Day(2026, time.April, 1)

	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{
			confirmedBooking(40, dates.Day(2026, time.February, 15), dates.Day(2026, time.March, 15)),
			confirmedBooking(20, dates.Day(2026, time.March, 10), dates.Day(2026, time.May, 1)),
		}},
		&fakeWarehouseRepo{warehouse: activeWarehouse()},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		WarehouseID:  10,
		ResourceType: domain.ResourcePallet,
		StartDate:    queryStart,
		EndDate:      queryEnd,
	})

	require.NoError(t, err)
	assert.Equal(t, 100.0, resp.TotalCapacity)
	assert.Equal(t, 60.0, resp.OccupiedCapacity)
	assert.Equal(t, 40.0, resp.AvailableCapacity)
}

func TestExecute_EmptyWarehouse(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeWarehouseRepo{warehouse: activeWarehouse()},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		WarehouseID:  10,
		ResourceType: domain.ResourcePallet,
		StartDate:    dates.Day(2026, time.March, 1),
		EndDate:      dates.Day(2026, time.April, 1),
	})

	require.NoError(t, err)
	assert.Equal(t, 100.0, resp.AvailableCapacity)
	assert.Equal(t, 0.0, resp.OccupiedCapacity)
}

func TestExecute_WarehouseNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeWarehouseRepo{err: warehouseRepo.ErrWarehouseNotFound},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		WarehouseID:  99,
		ResourceType: domain.ResourcePallet,
		StartDate:    dates.Day(2026, time.March, 1),
		EndDate:      dates.Day(2026, time.April, 1),
	})

	assert.ErrorIs(t, err, ErrWarehouseNotFound)
}

func TestExecute_UnsupportedResource(t *testing.T) {
	// Склад без площадной емкости не продает area
	wh := activeWarehouse()
	wh.AreaCapacitySqFt = 0

	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeWarehouseRepo{warehouse: wh},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		WarehouseID:  10,
		ResourceType: domain.ResourceArea,
		StartDate:    dates.Day(2026, time.March, 1),
		EndDate:      dates.Day(2026, time.April, 1),
	})

	assert.ErrorIs(t, err, ErrUnsupportedResource)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeWarehouseRepo{warehouse: activeWarehouse()},
		noopLogger{},
	)

	tests := []struct {
		name      string
		startDate time.Time
		endDate   time.Time
	}{
		{
			name:      "end before start",
			startDate: dates.Day(2026, time.April, 1),
			endDate:   dates.Day(2026, time.March, 1),
		},
		{
			name:      "empty interval",
			startDate: dates.Day(2026, time.March, 1),
			endDate:   dates.Day(2026, time.March, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				WarehouseID:  10,
				ResourceType: domain.ResourcePallet,
				StartDate:    tt.startDate,
				EndDate:      tt.endDate,
			})
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestExecute_RepositoryErrorWrapsInternal(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{err: errors.New("connection refused")},
		&fakeWarehouseRepo{warehouse: activeWarehouse()},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		WarehouseID:  10,
		ResourceType: domain.ResourcePallet,
		StartDate:    dates.Day(2026, time.March, 1),
		EndDate:      dates.Day(2026, time.April, 1),
	})

	assert.ErrorIs(t, err, ErrInternal)
}
