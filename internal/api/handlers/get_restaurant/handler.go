package get_restaurant

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
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

// Handle GET /api/v1/restaurants/{restaurantId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := uuid.Parse(mux.Vars(r)["restaurantId"])
	if err != nil {
		h.logger.Warn("GET /restaurants/{id} - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	restaurant, err := h.service.GetByID(r.Context(), restaurantID)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /restaurants/{id} - Rejected: restaurant_id=%s, error=%v", restaurantID, err)
		} else {
			h.logger.Error("GET /restaurants/{id} - Failed to get restaurant: restaurant_id=%s, error=%v", restaurantID, err)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id} - Restaurant retrieved successfully: restaurant_id=%s", restaurantID)
	handlers.RespondJSON(w, http.StatusOK, restaurant)
}
