package change_restaurant_activation

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

// Activate POST /api/v1/systemadmin/restaurants/{restaurantId}/activate
func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, true)
}

// Deactivate POST /api/v1/systemadmin/restaurants/{restaurantId}/deactivate
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, false)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, active bool) {
	restaurantID, err := uuid.Parse(mux.Vars(r)["restaurantId"])
	if err != nil {
		h.logger.Warn("POST /systemadmin/restaurants/{id} - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	user, _ := middleware.GetUser(r.Context())

	restaurant, err := h.service.SetActive(r.Context(), &models.SetActiveRequest{
		User:         user,
		RestaurantID: restaurantID,
		Active:       active,
	})
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /systemadmin/restaurants/{id} - Rejected: restaurant_id=%s, active=%t, error=%v", restaurantID, active, err)
		} else {
			h.logger.Error("POST /systemadmin/restaurants/{id} - Failed: restaurant_id=%s, active=%t, error=%v", restaurantID, active, err)
		}
		return
	}

	h.logger.Info("POST /systemadmin/restaurants/{id} - restaurant_id=%s, active=%t", restaurantID, restaurant.IsActive)
	handlers.RespondJSON(w, http.StatusOK, restaurant)
}
