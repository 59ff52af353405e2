package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehq/WSM-BookingService/pkg/dates"
)

func testSchedule() *PricingSchedule {
	return &PricingSchedule{
		ID:           1,
		WarehouseID:  10,
		ResourceType: ResourcePallet,
		BasePrice:    decimal.NewFromInt(5),
		BillingUnit:  BillingPerMonth,
		MinQuantity:  1,
		MaxQuantity:  500,
		// По убыванию порога: первый подходящий выигрывает
		VolumeDiscounts: []VolumeDiscount{
			{MinQuantity: 100, Percent: decimal.NewFromInt(20)},
			{MinQuantity: 50, Percent: decimal.NewFromInt(10)},
			{MinQuantity: 20, Percent: decimal.NewFromInt(5)},
		},
	}
}

func TestCalculateBreakdown_WorkedExample(t *testing.T) {
	// 50 паллет на 90 дней (3 месяца) по 5.00 за паллето-месяц,
	// скидка за объем 10% (порог 50), членство 5%
	schedule := testSchedule()
	start := dates.Day(2026, time.March, 1)
	end := dates.Day(2026, time.May, 30)

	b := CalculateBreakdown(schedule, 50, start, end, decimal.NewFromInt(5))

	assert.Equal(t, "750", b.BaseAmount.String())
	assert.Equal(t, "10", b.VolumeDiscountPercent.String())
	assert.Equal(t, "75", b.VolumeDiscountAmount.String())
	assert.Equal(t, "675", b.AmountAfterVolume.String())
	assert.Equal(t, "33.75", b.MembershipDiscountAmount.String())
	assert.Equal(t, "641.25", b.Total.String())
}

func TestCalculateBreakdown_DiscountsCompoundNotAdd(t *testing.T) {
	// Скидки компаундируются: членство применяется к сумме ПОСЛЕ скидки
	// за объем. Аддитивная модель (10% + 5% = 15% от базы) дала бы 637.50.
	schedule := testSchedule()
	start := dates.Day(2026, time.March, 1)
	end := dates.Day(2026, time.May, 30)

	b := CalculateBreakdown(schedule, 50, start, end, decimal.NewFromInt(5))

	additive := decimal.NewFromFloat(637.50)
	assert.False(t, b.Total.Equal(additive), "discounts must compound, not add")
	assert.Equal(t, "641.25", b.Total.String())
}

func TestCalculateBreakdown_Deterministic(t *testing.T) {
	schedule := testSchedule()
	start := dates.Day(2026, time.March, 1)
	end := dates.Day(2026, time.May, 30)

	first := CalculateBreakdown(schedule, 50, start, end, decimal.NewFromInt(5))
	second := CalculateBreakdown(schedule, 50, start, end, decimal.NewFromInt(5))

	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.BaseAmount.Equal(second.BaseAmount))
	assert.True(t, first.VolumeDiscountAmount.Equal(second.VolumeDiscountAmount))
	assert.True(t, first.MembershipDiscountAmount.Equal(second.MembershipDiscountAmount))
}

func TestCalculateBreakdown_TotalNeverNegative(t *testing.T) {
	// Патологическая конфигурация: 100% скидка за объем и 100% членство
	schedule := testSchedule()
	schedule.VolumeDiscounts = []VolumeDiscount{
		{MinQuantity: 1, Percent: decimal.NewFromInt(100)},
	}
	start := dates.Day(2026, time.March, 1)
	end := dates.Day(2026, time.April, 1)

	b := CalculateBreakdown(schedule, 50, start, end, decimal.NewFromInt(100))

	assert.False(t, b.Total.IsNegative())
	assert.True(t, b.Total.Equal(decimal.Zero))
}

func TestCalculateBreakdown_PerYearBilling(t *testing.T) {
	// Годовой биллинг оплачивает точную долю года: 73 дня = 0.2 года.
	// 10 паллет × 100.00/год × 0.2 = 200.00
	schedule := testSchedule()
	schedule.BasePrice = decimal.NewFromInt(100)
	schedule.BillingUnit = BillingPerYear
	schedule.VolumeDiscounts = nil

	start := dates.Day(2026, time.March, 1)
	end := start.AddDate(0, 0, 73)

	b := CalculateBreakdown(schedule, 10, start, end, decimal.Zero)

	assert.Equal(t, "0.2", b.BillingPeriods.String())
	assert.Equal(t, "200", b.Total.String())
}

func TestCalculateBreakdown_PerMonthMinimumOnePeriod(t *testing.T) {
	// Даже трехдневное бронирование оплачивается как один месяц
	schedule := testSchedule()
	schedule.VolumeDiscounts = nil

	start := dates.Day(2026, time.March, 1)
	end := dates.Day(2026, time.March, 4)

	b := CalculateBreakdown(schedule, 10, start, end, decimal.Zero)

	assert.Equal(t, "1", b.BillingPeriods.String())
	assert.Equal(t, "50", b.Total.String())
}

func TestResolveVolumeDiscount(t *testing.T) {
	schedule := testSchedule()

	tests := []struct {
		name     string
		quantity float64
		want     string
	}{
		{name: "below all thresholds", quantity: 10, want: "0"},
		{name: "exactly at lowest threshold", quantity: 20, want: "5"},
		{name: "between thresholds", quantity: 49, want: "5"},
		{name: "exactly at middle threshold", quantity: 50, want: "10"},
		{name: "exactly at highest threshold", quantity: 100, want: "20"},
		{name: "above all thresholds", quantity: 400, want: "20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.ResolveVolumeDiscount(tt.quantity).String())
		})
	}
}

func TestResolveVolumeDiscount_HigherQuantityNeverPaysMore(t *testing.T) {
	// Монотонность: больший объем не дает меньшую скидку
	schedule := testSchedule()

	previous := decimal.Zero
	for quantity := 1.0; quantity <= 500; quantity++ {
		current := schedule.ResolveVolumeDiscount(quantity)
		require.True(t, current.GreaterThanOrEqual(previous),
			"discount dropped at quantity %.0f: %s -> %s", quantity, previous, current)
		previous = current
	}
}

func TestQuantityInRange(t *testing.T) {
	schedule := testSchedule()

	// Границы диапазона включительно
	assert.True(t, schedule.QuantityInRange(1))
	assert.True(t, schedule.QuantityInRange(500))
	assert.True(t, schedule.QuantityInRange(250))
	assert.False(t, schedule.QuantityInRange(0.5))
	assert.False(t, schedule.QuantityInRange(501))
}

func TestBillingPeriods(t *testing.T) {
	start := dates.Day(2026, time.June, 1)

	tests := []struct {
		name string
		unit BillingUnit
		end  time.Time
		want string
	}{
		{name: "per month exactly thirty days", unit: BillingPerMonth, end: start.AddDate(0, 0, 30), want: "1"},
		{name: "per month rounds up", unit: BillingPerMonth, end: start.AddDate(0, 0, 31), want: "2"},
		{name: "per month minimum one", unit: BillingPerMonth, end: start.AddDate(0, 0, 3), want: "1"},
		{name: "per year exact fraction", unit: BillingPerYear, end: start.AddDate(0, 0, 73), want: "0.2"},
		{name: "per year full year", unit: BillingPerYear, end: start.AddDate(0, 0, 365), want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BillingPeriods(tt.unit, start, tt.end).String())
		})
	}
}
