package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehq/WSM-BookingService/internal/domain"
	warehouseRepo "github.com/warehq/WSM-BookingService/internal/infra/storage/warehouse"
	"github.com/warehq/WSM-BookingService/pkg/dates"
)

type fakeBookingRepo struct {
	overlapping []*domain.Booking
	created     *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = 42
	created.CreatedAt = dates.Day(2026, time.February, 1)
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetOverlapping(_ context.Context, _ int64, _ domain.ResourceType, _, _ time.Time) ([]*domain.Booking, error) {
	return f.overlapping, nil
}

type fakeWarehouseRepo struct {
	warehouse *domain.Warehouse
	err       error
}

func (f *fakeWarehouseRepo) GetByID(_ context.Context, _ int64) (*domain.Warehouse, error) {
	return f.warehouse, f.err
}

type fakePricingRepo struct {
	schedule *domain.PricingSchedule
	err      error
}

func (f *fakePricingRepo) GetByWarehouseAndResource(_ context.Context, _ int64, _ domain.ResourceType) (*domain.PricingSchedule, error) {
	return f.schedule, f.err
}

type fakeMembershipClient struct {
	percent float64
}

func (f *fakeMembershipClient) GetDiscountPercent(_ context.Context, _ int64) (float64, error) {
	return f.percent, nil
}

// fakeTxManager выполняет функцию напрямую, без транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
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

func palletSchedule() *domain.PricingSchedule {
	return &domain.PricingSchedule{
		ID:           1,
		WarehouseID:  10,
		ResourceType: domain.ResourcePallet,
		BasePrice:    decimal.NewFromInt(5),
		BillingUnit:  domain.BillingPerMonth,
		MinQuantity:  1,
		MaxQuantity:  500,
		VolumeDiscounts: []domain.VolumeDiscount{
			{MinQuantity: 50, Percent: decimal.NewFromInt(10)},
		},
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

func newTestUseCase(
	bookingRepo *fakeBookingRepo,
	whRepo *fakeWarehouseRepo,
	prRepo *fakePricingRepo,
	membership *fakeMembershipClient,
	txMgr *fakeTxManager,
) *UseCase {
	uc := NewUseCase(bookingRepo, whRepo, prRepo, membership, txMgr, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: dates.Day(2026, time.February, 1)}
	return uc
}

func validRequest() *Request {
	return &Request{
		CustomerID:   7,
		WarehouseID:  10,
		ResourceType: domain.ResourcePallet,
		Quantity:     50,
		StartDate:    dates.Day(2026, time.March, 1),
		EndDate:      dates.Day(2026, time.May, 30),
	}
}

func TestExecute_AdmitsBookingWithPriceSnapshot(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	txMgr := &fakeTxManager{}
	uc := newTestUseCase(
		bookingRepo,
		&fakeWarehouseRepo{warehouse: activeWarehouse()},
		&fakePricingRepo{schedule: palletSchedule()},
		&fakeMembershipClient{percent: 5},
		txMgr,
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 1, txMgr.calls)

	// Снапшот цены зафиксирован на бронировании
	require.NotNil(t, bookingRepo.created)
	assert.Equal(t, "750", bookingRepo.created.BaseAmount.String())
	assert.Equal(t, "75", bookingRepo.created.VolumeDiscountAmount.String())
	assert.Equal(t, "33.75", bookingRepo.created.MembershipDiscountAmount.String())
	assert.Equal(t, "641.25", bookingRepo.created.TotalPrice.String())
}

func TestExecute_RejectsWhenCapacityInsufficient(t *testing.T) {
	// Занято 60 из 100, запрошено 50 - отказ
	bookingRepo := &fakeBookingRepo{overlapping: []*domain.Booking{
		confirmedBooking(40, dates.Day(2026, time.February, 15), dates.Day(2026, time.April, 15)),
		confirmedBooking(20, dates.Day(2026, time.March, 10), dates.Day(2026, time.June, 1)),
	}}
	uc := newTestUseCase(
		bookingRepo,
		&fakeWarehouseRepo{warehouse: activeWarehouse()},
		&fakePricingRepo{schedule: palletSchedule()},
		&fakeMembershipClient{},
		&fakeTxManager{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInsufficientCapacity)
	assert.Nil(t, bookingRepo.created)
}

func TestExecute_AdmitsExactRemainder(t *testing.T) {
	// Занято 60 из 100, запрошено ровно 40 - проходит
	bookingRepo := &fakeBookingRepo{overlapping: []*domain.Booking{
		confirmedBooking(60, dates.Day(2026, time.February, 15), dates.Day(2026, time.June, 1)),
	}}
	uc := newTestUseCase(
		bookingRepo,
		&fakeWarehouseRepo{warehouse: activeWarehouse()},
		&fakePricingRepo{schedule: palletSchedule()},
		&fakeMembershipClient{},
		&fakeTxManager{},
	)

	req := validRequest()
	req.Quantity = 40

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 40.0, resp.Quantity)
}

func TestExecute_BoundaryAdjacentBookingDoesNotBlock(t *testing.T) {
	// Бронирование заканчивается в день начала нового: интервалы
	// полуоткрытые, пересечения нет, вся емкость свободна
	bookingRepo := &fakeBookingRepo{overlapping: []*domain.Booking{
		confirmedBooking(100, dates.Day(2026, time.January, 1), dates.Day(2026, time.March, 1)),
	}}
	uc := newTestUseCase(
		bookingRepo,
		&fakeWarehouseRepo{warehouse: activeWarehouse()},
		&fakePricingRepo{schedule: palletSchedule()},
		&fakeMembershipClient{},
		&fakeTxManager{},
	)

	req := validRequest()
	req.Quantity = 100

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestExecute_WarehouseInactive(t *testing.T) {
	wh := activeWarehouse()
	wh.IsActive = false

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeWarehouseRepo{warehouse: wh},
		&fakePricingRepo{schedule: palletSchedule()},
		&fakeMembershipClient{},
		&fakeTxManager{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrWarehouseInactive)
}

func TestExecute_WarehouseNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeWarehouseRepo{err: warehouseRepo.ErrWarehouseNotFound},
		&fakePricingRepo{schedule: palletSchedule()},
		&fakeMembershipClient{},
		&fakeTxManager{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrWarehouseNotFound)
}

func TestExecute_StartDateInPast(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeWarehouseRepo{warehouse: activeWarehouse()},
		&fakePricingRepo{schedule: palletSchedule()},
		&fakeMembershipClient{},
		&fakeTxManager{},
	)

	req := validRequest()
	req.StartDate = dates.Day(2026, time.January, 15)
	req.EndDate = dates.Day(2026, time.February, 15)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrStartDateInPast)
}

func TestExecute_StartDateTodayAllowed(t *testing.T) {
	// Сравниваются только даты: бронирование с сегодняшней датой допустимо
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeWarehouseRepo{warehouse: activeWarehouse()},
		&fakePricingRepo{schedule: palletSchedule()},
		&fakeMembershipClient{},
		&fakeTxManager{},
	)

	req := validRequest()
	req.StartDate = dates.Day(2026, time.February, 1)

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestExecute_QuantityOutOfScheduleRange(t *testing.T) {
	schedule := palletSchedule()
	schedule.MinQuantity = 20

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeWarehouseRepo{warehouse: activeWarehouse()},
		&fakePricingRepo{schedule: schedule},
		&fakeMembershipClient{},
		&fakeTxManager{},
	)

	req := validRequest()
	req.Quantity = 10

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrQuantityOutOfRange)
}
