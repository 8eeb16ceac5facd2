package check_order_availability

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	checkOrderAvailability "github.com/m04kA/SMC-RestaurantService/internal/usecase/check_order_availability"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidOrderTime    = "некорректное время заказа, ожидается RFC3339 (например 2026-10-19T18:30:00+02:00)"
)

type Handler struct {
	useCase CheckOrderAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckOrderAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/order-availability?at=<RFC3339>
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := uuid.Parse(mux.Vars(r)["restaurantId"])
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/order-availability - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	req := &checkOrderAvailability.Request{RestaurantID: restaurantID}

	// Без параметра at проверяется заказ на текущий момент
	if at := r.URL.Query().Get("at"); at != "" {
		orderDateTime, err := time.Parse(time.RFC3339, at)
		if err != nil {
			h.logger.Warn("GET /restaurants/{id}/order-availability - Invalid order time %q: %v", at, err)
			handlers.RespondBadRequest(w, msgInvalidOrderTime)
			return
		}
		req.OrderDateTime = &orderDateTime
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /restaurants/{id}/order-availability - Rejected: restaurant_id=%s, error=%v", restaurantID, err)
		} else {
			h.logger.Error("GET /restaurants/{id}/order-availability - Failed: restaurant_id=%s, error=%v", restaurantID, err)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/order-availability - restaurant_id=%s, possible=%t", restaurantID, result.IsOrderPossible)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
