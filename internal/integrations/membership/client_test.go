package membership

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewClient(server.URL, 5*time.Second, noopLogger{})
}

func TestGetMembership_OK(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/customers/7/membership", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"customerId": 7, "tier": "gold", "discountPercent": 5}`))
	})

	m, err := client.GetMembership(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), m.CustomerID)
	assert.Equal(t, "gold", m.Tier)
	assert.Equal(t, 5.0, m.DiscountPercent)
}

func TestGetMembership_NotFound(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetMembership(context.Background(), 7)

	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestGetMembership_PercentOutOfRange(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"customerId": 7, "tier": "gold", "discountPercent": 150}`))
	})

	_, err := client.GetMembership(context.Background(), 7)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetDiscountPercent_NoMembershipIsZero(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	percent, err := client.GetDiscountPercent(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 0.0, percent)
}

func TestGetDiscountPercent_GracefulDegradationOnServerError(t *testing.T) {
	// Недоступность сервиса скидок не должна блокировать бронирование
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	percent, err := client.GetDiscountPercent(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 0.0, percent)
}

func TestGetDiscountPercent_ReturnsPercent(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"customerId": 7, "tier": "silver", "discountPercent": 3}`))
	})

	percent, err := client.GetDiscountPercent(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 3.0, percent)
}
