package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warehq/WSM-BookingService/pkg/dates"
)

// BillingUnit единица биллинга в прайс-листе
type BillingUnit string

const (
	// BillingPerMonth цена за единицу ресурса в месяц,
	// количество месяцев = ceil(days / 30), минимум 1
	BillingPerMonth BillingUnit = "per_month"
	// BillingPerYear цена за единицу ресурса в год,
	// оплачивается доля года days / 365 без округления через месяцы
	BillingPerYear BillingUnit = "per_year"
)

// IsValid returns true if the billing unit is known
func (u BillingUnit) IsValid() bool {
	return u == BillingPerMonth || u == BillingPerYear
}

// VolumeDiscount скидка за объем: порог (минимальное количество для
// квалификации, включительно) и процент скидки 0-100
type VolumeDiscount struct {
	MinQuantity float64
	Percent     decimal.Decimal
}

// PricingSchedule прайс-лист склада для одного типа ресурса.
// Наличие прайс-листа определяет, что измерение продается.
type PricingSchedule struct {
	ID           int64
	WarehouseID  int64
	ResourceType ResourceType
	BasePrice    decimal.Decimal // цена за единицу ресурса за биллинговый период
	BillingUnit  BillingUnit
	MinQuantity  float64
	MaxQuantity  float64
	// VolumeDiscounts отсортированы по убыванию порога:
	// применяется ПЕРВЫЙ порог <= количеству (наивысший подходящий уровень,
	// скидки НЕ суммируются между уровнями)
	VolumeDiscounts []VolumeDiscount
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// QuantityInRange проверяет, что количество входит в допустимый диапазон
// прайс-листа (границы включительно)
func (s *PricingSchedule) QuantityInRange(quantity float64) bool {
	return quantity >= s.MinQuantity && quantity <= s.MaxQuantity
}

// ResolveVolumeDiscount возвращает процент скидки за объем для указанного
// количества: первый (наибольший) порог <= quantity. Равенство порогу
// квалифицирует. Если ни один порог не подходит - скидка 0.
func (s *PricingSchedule) ResolveVolumeDiscount(quantity float64) decimal.Decimal {
	for _, d := range s.VolumeDiscounts {
		if quantity >= d.MinQuantity {
			return d.Percent
		}
	}
	return decimal.Zero
}

// PricingBreakdown результат расчета цены. Каждое поле выводится из входных
// данных, поэтому счет можно отрисовать построчно без пересчета.
// Не персистится как отдельная сущность - снапшот полей сохраняется в Booking.
type PricingBreakdown struct {
	UnitPrice                 decimal.Decimal
	BillingUnit               BillingUnit
	BillingPeriods            decimal.Decimal
	Quantity                  float64
	BaseAmount                decimal.Decimal
	VolumeDiscountPercent     decimal.Decimal
	VolumeDiscountAmount      decimal.Decimal
	AmountAfterVolume         decimal.Decimal
	MembershipDiscountPercent decimal.Decimal
	MembershipDiscountAmount  decimal.Decimal
	Total                     decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// BillingPeriods возвращает количество биллинговых периодов для интервала
// [startDate, endDate) и единицы биллинга. Единственное место в системе,
// где определены правила округления периодов.
func BillingPeriods(unit BillingUnit, startDate, endDate time.Time) decimal.Decimal {
	days := dates.DaysBetween(startDate, endDate)

	switch unit {
	case BillingPerYear:
		return dates.YearFraction(days)
	default:
		return decimal.NewFromInt(dates.MonthsCeil(days))
	}
}

// CalculateBreakdown вычисляет детерминированную цену бронирования.
//
// Порядок применения скидок - наблюдаемое бизнес-правило, а не деталь
// реализации: скидка за объем применяется к базовой сумме, скидка по
// членству - к сумме ПОСЛЕ скидки за объем (скидки компаундируются,
// не складываются).
//
// Вся арифметика ведется в decimal без промежуточных округлений;
// до валютной точности (2 знака) округляется только итог, один раз.
//
// Предполагает уже валидированные входные данные: startDate < endDate,
// количество в диапазоне прайс-листа, membershipPercent в [0, 100].
func CalculateBreakdown(
	schedule *PricingSchedule,
	quantity float64,
	startDate, endDate time.Time,
	membershipPercent decimal.Decimal,
) *PricingBreakdown {
	periods := BillingPeriods(schedule.BillingUnit, startDate, endDate)
	qty := decimal.NewFromFloat(quantity)

	baseAmount := qty.Mul(schedule.BasePrice).Mul(periods)

	volumePercent := schedule.ResolveVolumeDiscount(quantity)
	volumeAmount := baseAmount.Mul(volumePercent).Div(hundred)
	afterVolume := baseAmount.Sub(volumeAmount)

	membershipAmount := afterVolume.Mul(membershipPercent).Div(hundred)

	total := afterVolume.Sub(membershipAmount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return &PricingBreakdown{
		UnitPrice:                 schedule.BasePrice,
		BillingUnit:               schedule.BillingUnit,
		BillingPeriods:            periods,
		Quantity:                  quantity,
		BaseAmount:                baseAmount,
		VolumeDiscountPercent:     volumePercent,
		VolumeDiscountAmount:      volumeAmount,
		AmountAfterVolume:         afterVolume,
		MembershipDiscountPercent: membershipPercent,
		MembershipDiscountAmount:  membershipAmount,
		Total:                     total.Round(2),
	}
}
