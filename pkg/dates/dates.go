// Package dates содержит утилиты для работы с целодневными датами
// и полуоткрытыми интервалами [start, end).
//
// Все бронирования в системе целодневные: дата начала включается,
// дата окончания исключается. Благодаря этому бронирование,
// заканчивающееся в день D, и бронирование, начинающееся в день D,
// не пересекаются.
//
// Правила округления биллинговых периодов собраны здесь и только здесь:
// расхождение между расчетом котировки и расчетом счета - это баг.
package dates

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DaysPerMonth количество дней в расчетном месяце
	DaysPerMonth = 30
	// DaysPerYear количество дней в расчетном году
	DaysPerYear = 365
)

// Day создает дату в UTC с нулевым временем
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize обнуляет время, оставляя только дату (в исходной таймзоне)
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween возвращает количество целых дней между start и end.
// Для полуоткрытого интервала [start, end) это и есть длительность:
// [2024-06-01, 2024-07-01) = 30 дней.
func DaysBetween(start, end time.Time) int {
	return int(Normalize(end).Sub(Normalize(start)).Hours() / 24)
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd).
// Строгие неравенства: интервалы, граничащие по дате, НЕ пересекаются.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// MonthsCeil возвращает количество биллинговых месяцев для указанной
// длительности в днях: ceil(days / 30), минимум 1 месяц даже для
// неполного периода.
func MonthsCeil(days int) int64 {
	if days <= DaysPerMonth {
		return 1
	}
	months := int64(days / DaysPerMonth)
	if days%DaysPerMonth != 0 {
		months++
	}
	return months
}

// YearFraction возвращает долю расчетного года для указанной длительности
// в днях: days / 365 как точная десятичная дробь.
// Считается напрямую, без промежуточного округления через месяцы.
func YearFraction(days int) decimal.Decimal {
	return decimal.NewFromInt(int64(days)).Div(decimal.NewFromInt(DaysPerYear))
}
