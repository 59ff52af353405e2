package quote_price

import (
	"time"

	"github.com/warehq/WSM-BookingService/internal/domain"
	quotePrice "github.com/warehq/WSM-BookingService/internal/usecase/quote_price"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	WarehouseID  int64   `json:"warehouseId"`
	ResourceType string  `json:"resourceType"`
	Quantity     float64 `json:"quantity"`
	StartDate    string  `json:"startDate"` // "2026-03-01"
	EndDate      string  `json:"endDate"`   // "2026-05-30" (исключительно)
	CustomerID   *int64  `json:"customerId,omitempty"`
}

// QuoteResponse HTTP response model с построчной разбивкой цены.
// Денежные поля сериализуются строками с двумя знаками после запятой.
type QuoteResponse struct {
	WarehouseID  int64  `json:"warehouseId"`
	ResourceType string `json:"resourceType"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`

	UnitPrice                 string  `json:"unitPrice"`
	BillingUnit               string  `json:"billingUnit"`
	BillingPeriods            string  `json:"billingPeriods"`
	Quantity                  float64 `json:"quantity"`
	BaseAmount                string  `json:"baseAmount"`
	VolumeDiscountPercent     string  `json:"volumeDiscountPercent"`
	VolumeDiscountAmount      string  `json:"volumeDiscountAmount"`
	AmountAfterVolume         string  `json:"amountAfterVolume"`
	MembershipDiscountPercent string  `json:"membershipDiscountPercent"`
	MembershipDiscountAmount  string  `json:"membershipDiscountAmount"`
	Total                     string  `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*quotePrice.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &quotePrice.Request{
		WarehouseID:  r.WarehouseID,
		ResourceType: domain.ResourceType(r.ResourceType),
		Quantity:     r.Quantity,
		StartDate:    startDate,
		EndDate:      endDate,
		CustomerID:   r.CustomerID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *QuoteResponse {
	return &QuoteResponse{
		WarehouseID:               resp.WarehouseID,
		ResourceType:              string(resp.ResourceType),
		StartDate:                 resp.StartDate.Format(domain.DateFormat),
		EndDate:                   resp.EndDate.Format(domain.DateFormat),
		UnitPrice:                 resp.UnitPrice.StringFixed(2),
		BillingUnit:               string(resp.BillingUnit),
		BillingPeriods:            resp.BillingPeriods.String(),
		Quantity:                  resp.Quantity,
		BaseAmount:                resp.BaseAmount.StringFixed(2),
		VolumeDiscountPercent:     resp.VolumeDiscountPercent.String(),
		VolumeDiscountAmount:      resp.VolumeDiscountAmount.StringFixed(2),
		AmountAfterVolume:         resp.AmountAfterVolume.StringFixed(2),
		MembershipDiscountPercent: resp.MembershipDiscountPercent.String(),
		MembershipDiscountAmount:  resp.MembershipDiscountAmount.StringFixed(2),
		Total:                     resp.Total.StringFixed(2),
	}
}
