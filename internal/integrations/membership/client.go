package membership

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с MembershipService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента MembershipService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetMembership получает членство клиента
func (c *Client) GetMembership(ctx context.Context, customerID int64) (*Membership, error) {
	url := fmt.Sprintf("%s/internal/customers/%d/membership", c.baseURL, customerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid customer ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrMembershipNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var m Membership
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if m.DiscountPercent < 0 || m.DiscountPercent > 100 {
		return nil, fmt.Errorf("%w: discount percent %.2f out of range [0, 100]", ErrInvalidResponse, m.DiscountPercent)
	}

	return &m, nil
}

// GetDiscountPercent получает процент скидки по членству с graceful degradation.
//
// Отсутствие членства - штатная ситуация: возвращается 0.
// При недоступности MembershipService тоже возвращается 0: бронирование
// важнее скидки, клиент без скидки лучше, чем отказ в бронировании.
// Недоступность логируется на уровне ERROR, чтобы проблему быстро заметили.
func (c *Client) GetDiscountPercent(ctx context.Context, customerID int64) (float64, error) {
	m, err := c.GetMembership(ctx, customerID)
	if err != nil {
		if err == ErrMembershipNotFound {
			c.log.Info("No membership found for customer_id=%d, discount=0", customerID)
			return 0, nil
		}

		c.log.Error("MembershipService unavailable, applying graceful degradation for customer_id=%d: %v", customerID, err)
		return 0, nil
	}

	c.log.Info("Membership discount for customer_id=%d: tier=%s, percent=%.2f", customerID, m.Tier, m.DiscountPercent)
	return m.DiscountPercent, nil
}
