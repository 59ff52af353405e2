package create_booking

import (
	"time"

	"github.com/warehq/WSM-BookingService/internal/domain"
	createBooking "github.com/warehq/WSM-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	WarehouseID  int64   `json:"warehouseId"`
	ResourceType string  `json:"resourceType"`
	Quantity     float64 `json:"quantity"`
	StartDate    string  `json:"startDate"` // "2026-03-01"
	EndDate      string  `json:"endDate"`   // "2026-05-30" (исключительно)
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model с зафиксированным снапшотом цены
type BookingResponse struct {
	ID           int64   `json:"id"`
	CustomerID   int64   `json:"customerId"`
	WarehouseID  int64   `json:"warehouseId"`
	ResourceType string  `json:"resourceType"`
	Quantity     float64 `json:"quantity"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Status       string  `json:"status"`

	UnitPrice                string `json:"unitPrice"`
	BillingUnit              string `json:"billingUnit"`
	BillingPeriods           string `json:"billingPeriods"`
	BaseAmount               string `json:"baseAmount"`
	VolumeDiscountAmount     string `json:"volumeDiscountAmount"`
	MembershipDiscountAmount string `json:"membershipDiscountAmount"`
	TotalPrice               string `json:"totalPrice"`

	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// CustomerID приходит из контекста аутентификации, не из тела запроса.
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:   customerID,
		WarehouseID:  r.WarehouseID,
		ResourceType: domain.ResourceType(r.ResourceType),
		Quantity:     r.Quantity,
		StartDate:    startDate,
		EndDate:      endDate,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                       resp.ID,
		CustomerID:               resp.CustomerID,
		WarehouseID:              resp.WarehouseID,
		ResourceType:             string(resp.ResourceType),
		Quantity:                 resp.Quantity,
		StartDate:                resp.StartDate.Format(domain.DateFormat),
		EndDate:                  resp.EndDate.Format(domain.DateFormat),
		Status:                   resp.Status,
		UnitPrice:                resp.UnitPrice.StringFixed(2),
		BillingUnit:              string(resp.BillingUnit),
		BillingPeriods:           resp.BillingPeriods.String(),
		BaseAmount:               resp.BaseAmount.StringFixed(2),
		VolumeDiscountAmount:     resp.VolumeDiscountAmount.StringFixed(2),
		MembershipDiscountAmount: resp.MembershipDiscountAmount.StringFixed(2),
		TotalPrice:               resp.TotalPrice.StringFixed(2),
		Notes:                    resp.Notes,
		CreatedAt:                resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                resp.UpdatedAt.Format(time.RFC3339),
	}
}
