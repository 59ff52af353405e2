package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// HeaderCustomerID заголовок с идентификатором клиента.
// Аутентификацию выполняет API gateway, сюда приходит уже проверенный ID.
const HeaderCustomerID = "X-Customer-ID"

type contextKey string

const customerIDKey contextKey = "customerID"

// Auth извлекает ID клиента из заголовка X-Customer-ID и кладет его
// в контекст запроса. Запросы без валидного заголовка отклоняются.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(HeaderCustomerID)
		if header == "" {
			respondUnauthorized(w, "отсутствует заголовок X-Customer-ID")
			return
		}

		customerID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || customerID <= 0 {
			respondUnauthorized(w, "некорректный заголовок X-Customer-ID")
			return
		}

		ctx := context.WithValue(r.Context(), customerIDKey, customerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCustomerID возвращает ID клиента из контекста запроса
func GetCustomerID(ctx context.Context) (int64, bool) {
	customerID, ok := ctx.Value(customerIDKey).(int64)
	return customerID, ok
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error": "` + message + `"}`))
}
