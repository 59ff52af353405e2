package update_pricing_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/warehq/WSM-BookingService/internal/api/handlers"
	"github.com/warehq/WSM-BookingService/internal/api/middleware"
	"github.com/warehq/WSM-BookingService/internal/service/pricing"
)

const (
	msgInvalidWarehouseID  = "некорректный ID склада"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingCustomerID   = "отсутствует ID клиента"
	msgWarehouseNotFound   = "склад не найден"
	msgForbidden           = "доступ запрещен"
	msgUnsupportedResource = "склад не поддерживает указанный тип ресурса"
	msgInvalidInput        = "некорректные входные данные"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/warehouses/{warehouseId}/pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем warehouseId из URL
	vars := mux.Vars(r)
	warehouseIDStr := vars["warehouseId"]

	warehouseID, err := strconv.ParseInt(warehouseIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /warehouses/{id}/pricing - Invalid warehouse ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWarehouseID)
		return
	}

	// Получаем requesterID из контекста (через middleware Auth)
	requesterID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("PUT /warehouses/{id}/pricing - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	// Декодируем body
	var req UpsertScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /warehouses/{id}/pricing - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в модель сервиса
	serviceReq := req.ToServiceRequest(warehouseID, requesterID)

	// Обновляем прайс-лист (сервис сам проверит права владельца)
	result, err := h.service.UpsertSchedule(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrWarehouseNotFound):
			h.logger.Warn("PUT /warehouses/{id}/pricing - Warehouse not found: warehouse_id=%d", warehouseID)
			handlers.RespondNotFound(w, msgWarehouseNotFound)

		case errors.Is(err, pricing.ErrAccessDenied):
			h.logger.Warn("PUT /warehouses/{id}/pricing - Access denied: warehouse_id=%d, requester_id=%d",
				warehouseID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, pricing.ErrUnsupportedResource):
			h.logger.Warn("PUT /warehouses/{id}/pricing - Unsupported resource: warehouse_id=%d, resource=%s",
				warehouseID, req.ResourceType)
			handlers.RespondBadRequest(w, msgUnsupportedResource)

		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("PUT /warehouses/{id}/pricing - Invalid input: warehouse_id=%d, error=%v",
				warehouseID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /warehouses/{id}/pricing - Failed to upsert schedule: warehouse_id=%d, error=%v",
				warehouseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /warehouses/{id}/pricing - Schedule upserted successfully: warehouse_id=%d, schedule_id=%d, resource=%s",
		warehouseID, result.ID, result.ResourceType)
	handlers.RespondJSON(w, http.StatusOK, result)
}
