package create_restaurant

import (
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/service/restaurants/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/systemadmin/restaurants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRestaurantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /systemadmin/restaurants - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.User, _ = middleware.GetUser(r.Context())

	restaurant, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /systemadmin/restaurants - Rejected: %v", err)
		} else {
			h.logger.Error("POST /systemadmin/restaurants - Failed to create restaurant: %v", err)
		}
		return
	}

	h.logger.Info("POST /systemadmin/restaurants - Restaurant created: restaurant_id=%s", restaurant.ID)
	handlers.RespondJSON(w, http.StatusCreated, restaurant)
}
