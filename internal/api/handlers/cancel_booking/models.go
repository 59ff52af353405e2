package cancel_booking

import (
	"github.com/warehq/WSM-BookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса.
// RequesterID приходит из контекста аутентификации, не из тела запроса.
func (r *CancelBookingRequest) ToServiceRequest(requesterID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		RequesterID:        requesterID,
		CancellationReason: r.CancellationReason,
	}
}
