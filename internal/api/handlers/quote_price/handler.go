package quote_price

import (
	"errors"
	"net/http"

	"github.com/warehq/WSM-BookingService/internal/api/handlers"
	quotePrice "github.com/warehq/WSM-BookingService/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange        = "дата окончания должна быть позже даты начала"
	msgUnsupportedResource = "склад не продает указанный тип ресурса"
	msgQuantityOutOfRange  = "количество вне допустимого диапазона прайс-листа"
	msgInvalidInput        = "некорректные входные данные"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrInvalidRange):
			h.logger.Warn("POST /quotes - Invalid date range: warehouse_id=%d", req.WarehouseID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, quotePrice.ErrUnsupportedResource):
			h.logger.Warn("POST /quotes - Unsupported resource: warehouse_id=%d, resource=%s",
				req.WarehouseID, req.ResourceType)
			handlers.RespondBadRequest(w, msgUnsupportedResource)

		case errors.Is(err, quotePrice.ErrQuantityOutOfRange):
			h.logger.Warn("POST /quotes - Quantity out of range: warehouse_id=%d, quantity=%.2f",
				req.WarehouseID, req.Quantity)
			handlers.RespondBadRequest(w, msgQuantityOutOfRange)

		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: warehouse_id=%d, error=%v", req.WarehouseID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /quotes - Failed to quote price: warehouse_id=%d, error=%v",
				req.WarehouseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /quotes - Quote calculated: warehouse_id=%d, resource=%s, total=%s",
		req.WarehouseID, req.ResourceType, response.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
