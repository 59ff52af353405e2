package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/warehq/WSM-BookingService/pkg/dates"
)

func booking(status BookingStatus, quantity float64, start, end time.Time) *Booking {
	return &Booking{
		WarehouseID:  10,
		ResourceType: ResourcePallet,
		Quantity:     quantity,
		StartDate:    start,
		EndDate:      end,
		Status:       status,
	}
}

func TestOccupiedCapacity(t *testing.T) {
	queryStart := dates.Day(2026, time.March, 1)
	queryEnd := dates.Day(2026, time.April, 1)

	tests := []struct {
		name     string
		bookings []*Booking
		want     float64
	}{
		{
			name:     "no bookings",
			bookings: nil,
			want:     0,
		},
		{
			name: "sums all overlapping occupancy bookings",
			bookings: []*Booking{
				booking(StatusConfirmed, 40, dates.Day(2026, time.February, 15), dates.Day(2026, time.March, 15)),
				booking(StatusActive, 20, dates.Day(2026, time.March, 10), dates.Day(2026, time.May, 1)),
			},
			want: 60,
		},
		{
			name: "cancelled and pending bookings do not count",
			bookings: []*Booking{
				booking(StatusConfirmed, 30, queryStart, queryEnd),
				booking(StatusPendingPayment, 50, queryStart, queryEnd),
				booking(StatusCancelledByCustomer, 50, queryStart, queryEnd),
				booking(StatusCompleted, 50, queryStart, queryEnd),
				booking(StatusExpired, 50, queryStart, queryEnd),
			},
			want: 30,
		},
		{
			name: "booking ending on query start does not overlap",
			bookings: []*Booking{
				booking(StatusConfirmed, 40, dates.Day(2026, time.February, 1), queryStart),
			},
			want: 0,
		},
		{
			name: "booking starting on query end does not overlap",
			bookings: []*Booking{
				booking(StatusConfirmed, 40, queryEnd, dates.Day(2026, time.May, 1)),
			},
			want: 0,
		},
		{
			name: "partial overlap counts full quantity",
			// Консервативная оценка: частично пересекающееся бронирование
			// учитывается целиком, а не пропорционально
			bookings: []*Booking{
				booking(StatusConfirmed, 25, dates.Day(2026, time.March, 25), dates.Day(2026, time.June, 1)),
			},
			want: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OccupiedCapacity(tt.bookings, queryStart, queryEnd))
		})
	}
}

func TestNewAvailabilityResult(t *testing.T) {
	tests := []struct {
		name          string
		total         float64
		occupied      float64
		wantAvailable float64
	}{
		{name: "normal remainder", total: 100, occupied: 60, wantAvailable: 40},
		{name: "fully occupied", total: 100, occupied: 100, wantAvailable: 0},
		{name: "overbooked data floors at zero", total: 100, occupied: 120, wantAvailable: 0},
		{name: "empty warehouse", total: 100, occupied: 0, wantAvailable: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewAvailabilityResult(tt.total, tt.occupied)
			assert.Equal(t, tt.total, result.TotalCapacity)
			assert.Equal(t, tt.occupied, result.OccupiedCapacity)
			assert.Equal(t, tt.wantAvailable, result.AvailableCapacity)
		})
	}
}
