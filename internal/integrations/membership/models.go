package membership

// Membership членство клиента в программе лояльности
type Membership struct {
	CustomerID      int64   `json:"customerId"`
	Tier            string  `json:"tier"`
	DiscountPercent float64 `json:"discountPercent"` // 0-100
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
