package pricing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehq/WSM-BookingService/internal/domain"
	warehouseRepo "github.com/warehq/WSM-BookingService/internal/infra/storage/warehouse"
	"github.com/warehq/WSM-BookingService/internal/service/pricing/models"
)

type fakePricingRepo struct {
	schedules []*domain.PricingSchedule
	upserted  *domain.PricingSchedule
}

func (f *fakePricingRepo) GetByWarehouse(_ context.Context, _ int64) ([]*domain.PricingSchedule, error) {
	return f.schedules, nil
}

func (f *fakePricingRepo) Upsert(_ context.Context, schedule *domain.PricingSchedule) (*domain.PricingSchedule, error) {
	upserted := *schedule
	upserted.ID = 1
	f.upserted = &upserted
	return &upserted, nil
}

type fakeWarehouseRepo struct {
	warehouse *domain.Warehouse
	err       error
}

func (f *fakeWarehouseRepo) GetByID(_ context.Context, _ int64) (*domain.Warehouse, error) {
	return f.warehouse, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func warehouse() *domain.Warehouse {
	return &domain.Warehouse{
		ID:               10,
		OwnerID:          1,
		Name:             "Central Storage",
		PalletCapacity:   100,
		AreaCapacitySqFt: 5000,
		IsActive:         true,
	}
}

func validUpsertRequest() *models.UpsertScheduleRequest {
	return &models.UpsertScheduleRequest{
		WarehouseID:  10,
		RequesterID:  1,
		ResourceType: "pallet",
		BasePrice:    decimal.NewFromInt(5),
		BillingUnit:  "per_month",
		MinQuantity:  1,
		MaxQuantity:  100,
		VolumeDiscounts: []models.VolumeDiscountTier{
			{MinQuantity: 20, Percent: decimal.NewFromInt(5)},
			{MinQuantity: 50, Percent: decimal.NewFromInt(10)},
		},
	}
}

func TestUpsertSchedule_SortsTiersDescending(t *testing.T) {
	repo := &fakePricingRepo{}
	svc := NewService(repo, &fakeWarehouseRepo{warehouse: warehouse()}, fakeTxManager{}, noopLogger{})

	resp, err := svc.UpsertSchedule(context.Background(), validUpsertRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	// Пороги сохраняются по убыванию: порядок резолюции скидки
	require.Len(t, repo.upserted.VolumeDiscounts, 2)
	assert.Equal(t, 50.0, repo.upserted.VolumeDiscounts[0].MinQuantity)
	assert.Equal(t, 20.0, repo.upserted.VolumeDiscounts[1].MinQuantity)
}

func TestUpsertSchedule_OnlyOwner(t *testing.T) {
	svc := NewService(&fakePricingRepo{}, &fakeWarehouseRepo{warehouse: warehouse()}, fakeTxManager{}, noopLogger{})

	req := validUpsertRequest()
	req.RequesterID = 99

	_, err := svc.UpsertSchedule(context.Background(), req)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpsertSchedule_WarehouseNotFound(t *testing.T) {
	svc := NewService(&fakePricingRepo{}, &fakeWarehouseRepo{err: warehouseRepo.ErrWarehouseNotFound}, fakeTxManager{}, noopLogger{})

	_, err := svc.UpsertSchedule(context.Background(), validUpsertRequest())

	assert.ErrorIs(t, err, ErrWarehouseNotFound)
}

func TestUpsertSchedule_ZeroCapacityDimensionRejected(t *testing.T) {
	wh := warehouse()
	wh.AreaCapacitySqFt = 0
	svc := NewService(&fakePricingRepo{}, &fakeWarehouseRepo{warehouse: wh}, fakeTxManager{}, noopLogger{})

	req := validUpsertRequest()
	req.ResourceType = "area"

	_, err := svc.UpsertSchedule(context.Background(), req)

	assert.ErrorIs(t, err, ErrUnsupportedResource)
}

func TestUpsertSchedule_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.UpsertScheduleRequest)
	}{
		{
			name:   "unknown resource type",
			mutate: func(req *models.UpsertScheduleRequest) { req.ResourceType = "container" },
		},
		{
			name:   "unknown billing unit",
			mutate: func(req *models.UpsertScheduleRequest) { req.BillingUnit = "per_week" },
		},
		{
			name:   "zero base price",
			mutate: func(req *models.UpsertScheduleRequest) { req.BasePrice = decimal.Zero },
		},
		{
			name:   "negative base price",
			mutate: func(req *models.UpsertScheduleRequest) { req.BasePrice = decimal.NewFromInt(-1) },
		},
		{
			name:   "max below min",
			mutate: func(req *models.UpsertScheduleRequest) { req.MaxQuantity = 0.5 },
		},
		{
			name: "discount percent above 100",
			mutate: func(req *models.UpsertScheduleRequest) {
				req.VolumeDiscounts[0].Percent = decimal.NewFromInt(150)
			},
		},
		{
			name: "duplicate thresholds",
			mutate: func(req *models.UpsertScheduleRequest) {
				req.VolumeDiscounts[1].MinQuantity = req.VolumeDiscounts[0].MinQuantity
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakePricingRepo{}, &fakeWarehouseRepo{warehouse: warehouse()}, fakeTxManager{}, noopLogger{})

			req := validUpsertRequest()
			tt.mutate(req)

			_, err := svc.UpsertSchedule(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetSchedules(t *testing.T) {
	repo := &fakePricingRepo{schedules: []*domain.PricingSchedule{
		{ID: 1, WarehouseID: 10, ResourceType: domain.ResourcePallet, BasePrice: decimal.NewFromInt(5), BillingUnit: domain.BillingPerMonth},
		{ID: 2, WarehouseID: 10, ResourceType: domain.ResourceArea, BasePrice: decimal.NewFromInt(2), BillingUnit: domain.BillingPerYear},
	}}
	svc := NewService(repo, &fakeWarehouseRepo{warehouse: warehouse()}, fakeTxManager{}, noopLogger{})

	resp, err := svc.GetSchedules(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "pallet", resp.Schedules[0].ResourceType)
	assert.Equal(t, "area", resp.Schedules[1].ResourceType)
}

func TestGetSchedules_WarehouseNotFound(t *testing.T) {
	svc := NewService(&fakePricingRepo{}, &fakeWarehouseRepo{err: warehouseRepo.ErrWarehouseNotFound}, fakeTxManager{}, noopLogger{})

	_, err := svc.GetSchedules(context.Background(), 99)

	assert.ErrorIs(t, err, ErrWarehouseNotFound)
}
