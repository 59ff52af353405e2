package get_pricing_schedules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/warehq/WSM-BookingService/internal/api/handlers"
	"github.com/warehq/WSM-BookingService/internal/service/pricing"
	"github.com/warehq/WSM-BookingService/internal/service/pricing/models"
)

const (
	msgInvalidWarehouseID = "некорректный ID склада"
	msgWarehouseNotFound  = "склад не найден"
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

// Handle GET /api/v1/warehouses/{warehouseId}/pricing
// Query params: resourceType (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем warehouseId из URL
	vars := mux.Vars(r)
	warehouseIDStr := vars["warehouseId"]

	warehouseID, err := strconv.ParseInt(warehouseIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /warehouses/{id}/pricing - Invalid warehouse ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWarehouseID)
		return
	}

	// Получаем прайс-листы склада (публичная операция)
	result, err := h.service.GetSchedules(r.Context(), warehouseID)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrWarehouseNotFound):
			h.logger.Warn("GET /warehouses/{id}/pricing - Warehouse not found: warehouse_id=%d", warehouseID)
			handlers.RespondNotFound(w, msgWarehouseNotFound)

		default:
			h.logger.Error("GET /warehouses/{id}/pricing - Failed to get schedules: warehouse_id=%d, error=%v",
				warehouseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Фильтруем по типу ресурса, если задан
	if resourceType := r.URL.Query().Get("resourceType"); resourceType != "" {
		filtered := make([]*models.ScheduleResponse, 0, len(result.Schedules))
		for _, schedule := range result.Schedules {
			if schedule.ResourceType == resourceType {
				filtered = append(filtered, schedule)
			}
		}
		result = &models.ScheduleListResponse{
			Schedules: filtered,
			Total:     len(filtered),
		}
	}

	h.logger.Info("GET /warehouses/{id}/pricing - Schedules retrieved successfully: warehouse_id=%d, count=%d",
		warehouseID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
