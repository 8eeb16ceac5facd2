package change_supported_order_mode

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/service/restaurants/models"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
)

type Handler struct {
	service RestaurantService
	logger  Logger
}

func NewHandler(service RestaurantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurantadmin/restaurants/{restaurantId}/changesupportedordermode
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := uuid.Parse(mux.Vars(r)["restaurantId"])
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/changesupportedordermode - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req models.ChangeSupportedOrderModeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/changesupportedordermode - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.RestaurantID = restaurantID
	req.User, _ = middleware.GetUser(r.Context())

	restaurant, err := h.service.ChangeSupportedOrderMode(r.Context(), &req)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /restaurants/{id}/changesupportedordermode - Rejected: restaurant_id=%s, error=%v", restaurantID, err)
		} else {
			h.logger.Error("POST /restaurants/{id}/changesupportedordermode - Failed: restaurant_id=%s, error=%v", restaurantID, err)
		}
		return
	}

	h.logger.Info("POST /restaurants/{id}/changesupportedordermode - restaurant_id=%s, mode=%s", restaurantID, restaurant.SupportedOrderMode)
	handlers.RespondJSON(w, http.StatusOK, restaurant)
}
