package create_booking

import (
	"errors"
	"net/http"

	"github.com/warehq/WSM-BookingService/internal/api/handlers"
	"github.com/warehq/WSM-BookingService/internal/api/middleware"
	createBooking "github.com/warehq/WSM-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingCustomerID    = "отсутствует ID клиента"
	msgWarehouseNotFound    = "склад не найден"
	msgWarehouseInactive    = "склад не принимает бронирования"
	msgInvalidRange         = "дата окончания должна быть позже даты начала"
	msgStartDateInPast      = "дата начала уже прошла"
	msgUnsupportedResource  = "склад не продает указанный тип ресурса"
	msgQuantityOutOfRange   = "количество вне допустимого диапазона прайс-листа"
	msgInsufficientCapacity = "недостаточно свободной емкости на выбранные даты"
	msgInvalidInput         = "некорректные входные данные"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем customerID из контекста (через middleware Auth)
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInsufficientCapacity):
			h.logger.Warn("POST /bookings - Insufficient capacity: customer_id=%d, warehouse_id=%d, quantity=%.2f",
				customerID, req.WarehouseID, req.Quantity)
			handlers.RespondConflict(w, msgInsufficientCapacity)

		case errors.Is(err, createBooking.ErrWarehouseNotFound):
			h.logger.Warn("POST /bookings - Warehouse not found: warehouse_id=%d", req.WarehouseID)
			handlers.RespondNotFound(w, msgWarehouseNotFound)

		case errors.Is(err, createBooking.ErrWarehouseInactive):
			h.logger.Warn("POST /bookings - Warehouse inactive: warehouse_id=%d", req.WarehouseID)
			handlers.RespondBadRequest(w, msgWarehouseInactive)

		case errors.Is(err, createBooking.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid date range: customer_id=%d, warehouse_id=%d",
				customerID, req.WarehouseID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createBooking.ErrStartDateInPast):
			h.logger.Warn("POST /bookings - Start date in past: customer_id=%d, warehouse_id=%d",
				customerID, req.WarehouseID)
			handlers.RespondBadRequest(w, msgStartDateInPast)

		case errors.Is(err, createBooking.ErrUnsupportedResource):
			h.logger.Warn("POST /bookings - Unsupported resource: warehouse_id=%d, resource=%s",
				req.WarehouseID, req.ResourceType)
			handlers.RespondBadRequest(w, msgUnsupportedResource)

		case errors.Is(err, createBooking.ErrQuantityOutOfRange):
			h.logger.Warn("POST /bookings - Quantity out of range: warehouse_id=%d, quantity=%.2f",
				req.WarehouseID, req.Quantity)
			handlers.RespondBadRequest(w, msgQuantityOutOfRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: customer_id=%d, warehouse_id=%d, error=%v",
				customerID, req.WarehouseID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, warehouse_id=%d, error=%v",
				customerID, req.WarehouseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer_id=%d, warehouse_id=%d, total=%s",
		result.ID, customerID, req.WarehouseID, response.TotalPrice)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
