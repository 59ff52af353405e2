package check_availability

import (
	"time"

	"github.com/warehq/WSM-BookingService/internal/domain"
)

// Request модель запроса на проверку доступности
type Request struct {
	WarehouseID  int64               // ID склада
	ResourceType domain.ResourceType // Тип ресурса (pallet или area)
	StartDate    time.Time           // Начало интервала (включительно)
	EndDate      time.Time           // Конец интервала (исключительно)
}

// Response модель ответа с остатком емкости.
// Снапшот на момент вычисления, НЕ резервация: параллельное бронирование
// может занять показанную емкость до того, как вызывающий код её запросит.
type Response struct {
	WarehouseID       int64
	ResourceType      domain.ResourceType
	StartDate         time.Time
	EndDate           time.Time
	TotalCapacity     float64
	OccupiedCapacity  float64
	AvailableCapacity float64 // max(0, total - occupied), не бывает отрицательной
}
