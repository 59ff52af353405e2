package domain

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxBookingDays              = 1825 // 5 лет
	MaxVolumeDiscountPercent    = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupancyStatuses статусы бронирований, занимающих емкость склада
// Используется при подсчете занятой емкости
var OccupancyStatuses = []BookingStatus{
	StatusConfirmed,
	StatusActive,
}

// InactiveStatuses статусы бронирований, не занимающих емкость
var InactiveStatuses = []BookingStatus{
	StatusPendingPayment,
	StatusCompleted,
	StatusCancelledByCustomer,
	StatusCancelledByCompany,
	StatusExpired,
}
