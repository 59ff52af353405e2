package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/warehq/WSM-BookingService/internal/api/handlers"
	checkAvailability "github.com/warehq/WSM-BookingService/internal/usecase/check_availability"
)

const (
	msgInvalidWarehouseID  = "некорректный ID склада"
	msgInvalidParams       = "некорректные параметры запроса, ожидаются resourceType, startDate и endDate (YYYY-MM-DD)"
	msgWarehouseNotFound   = "склад не найден"
	msgInvalidRange        = "дата окончания должна быть позже даты начала"
	msgUnsupportedResource = "склад не поддерживает указанный тип ресурса"
	msgInvalidInput        = "некорректные входные данные"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/warehouses/{warehouseId}/availability
// Query params: resourceType, startDate, endDate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем warehouseId из URL
	vars := mux.Vars(r)
	warehouseIDStr := vars["warehouseId"]

	warehouseID, err := strconv.ParseInt(warehouseIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /warehouses/{id}/availability - Invalid warehouse ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWarehouseID)
		return
	}

	// Собираем запрос из query параметров
	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(
		warehouseID,
		query.Get("resourceType"),
		query.Get("startDate"),
		query.Get("endDate"),
	)
	if err != nil {
		h.logger.Warn("GET /warehouses/{id}/availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrWarehouseNotFound):
			h.logger.Warn("GET /warehouses/{id}/availability - Warehouse not found: warehouse_id=%d", warehouseID)
			handlers.RespondNotFound(w, msgWarehouseNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidRange):
			h.logger.Warn("GET /warehouses/{id}/availability - Invalid date range: warehouse_id=%d", warehouseID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, checkAvailability.ErrUnsupportedResource):
			h.logger.Warn("GET /warehouses/{id}/availability - Unsupported resource: warehouse_id=%d, resource=%s",
				warehouseID, useCaseReq.ResourceType)
			handlers.RespondBadRequest(w, msgUnsupportedResource)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /warehouses/{id}/availability - Invalid input: warehouse_id=%d, error=%v",
				warehouseID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /warehouses/{id}/availability - Failed to check availability: warehouse_id=%d, error=%v",
				warehouseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /warehouses/{id}/availability - Availability checked: warehouse_id=%d, resource=%s, available=%.2f",
		warehouseID, result.ResourceType, result.AvailableCapacity)
	handlers.RespondJSON(w, http.StatusOK, response)
}
