package get_warehouse_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/warehq/WSM-BookingService/internal/api/handlers"
	"github.com/warehq/WSM-BookingService/internal/api/middleware"
	"github.com/warehq/WSM-BookingService/internal/service/bookings"
)

const (
	msgInvalidWarehouseID = "некорректный ID склада"
	msgMissingCustomerID  = "отсутствует ID клиента"
	msgInvalidParams      = "некорректные параметры запроса"
	msgWarehouseNotFound  = "склад не найден"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/warehouses/{warehouseId}/bookings
// Query params: resourceType, customerId, overlapsStart, overlapsEnd,
// status, occupancyOnly (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем warehouseId из URL
	vars := mux.Vars(r)
	warehouseIDStr := vars["warehouseId"]

	warehouseID, err := strconv.ParseInt(warehouseIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /warehouses/{id}/bookings - Invalid warehouse ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWarehouseID)
		return
	}

	// Получаем requesterID из контекста (через middleware Auth)
	requesterID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("GET /warehouses/{id}/bookings - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	// Собираем запрос из query параметров
	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		warehouseID,
		requesterID,
		query.Get("resourceType"),
		query.Get("customerId"),
		query.Get("overlapsStart"),
		query.Get("overlapsEnd"),
		query.Get("status"),
		query.Get("occupancyOnly"),
	)
	if err != nil {
		h.logger.Warn("GET /warehouses/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем бронирования склада (сервис сам проверит права владельца)
	result, err := h.service.GetWarehouseBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrWarehouseNotFound):
			h.logger.Warn("GET /warehouses/{id}/bookings - Warehouse not found: warehouse_id=%d", warehouseID)
			handlers.RespondNotFound(w, msgWarehouseNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /warehouses/{id}/bookings - Access denied: warehouse_id=%d, requester_id=%d",
				warehouseID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /warehouses/{id}/bookings - Invalid parameters: warehouse_id=%d, error=%v",
				warehouseID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /warehouses/{id}/bookings - Failed to get bookings: warehouse_id=%d, error=%v",
				warehouseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /warehouses/{id}/bookings - Bookings retrieved successfully: warehouse_id=%d, count=%d",
		warehouseID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
