package domain

import (
	"time"

	"github.com/warehq/WSM-BookingService/pkg/dates"
)

// AvailabilityResult represents remaining capacity for a warehouse,
// resource type and date range. It is a snapshot, not a reservation:
// a concurrent booking can consume the reported capacity before the
// caller commits (admission closes that gap with a serializable
// transaction).
type AvailabilityResult struct {
	TotalCapacity     float64
	OccupiedCapacity  float64
	AvailableCapacity float64
}

// OccupiedCapacity суммирует количество по всем бронированиям, занимающим
// емкость и пересекающим полуоткрытый интервал [queryStart, queryEnd).
//
// Консервативная (peak-conservative) оценка: суммируются ВСЕ пересекающиеся
// бронирования, а не поденный пик одновременной занятости. При частичном
// пересечении с окном запроса оценка завышает занятость, но никогда не
// занижает - сервис не пообещает емкость, которой нет. Осознанный компромисс
// простоты против точности; менять его - значит менять наблюдаемые цифры
// доступности по всей системе.
func OccupiedCapacity(bookings []*Booking, queryStart, queryEnd time.Time) float64 {
	var occupied float64

	for _, b := range bookings {
		if !b.OccupiesCapacity() {
			continue
		}
		if !dates.Overlaps(b.StartDate, b.EndDate, queryStart, queryEnd) {
			continue
		}
		occupied += b.Quantity
	}

	return occupied
}

// NewAvailabilityResult строит результат; доступная емкость не бывает
// отрицательной даже при овербукинге в данных
func NewAvailabilityResult(total, occupied float64) AvailabilityResult {
	available := total - occupied
	if available < 0 {
		available = 0
	}
	return AvailabilityResult{
		TotalCapacity:     total,
		OccupiedCapacity:  occupied,
		AvailableCapacity: available,
	}
}
