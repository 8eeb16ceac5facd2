package get_admin_restaurants

import (
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
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

// Handle GET /api/v1/restaurantadmin/myrestaurants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	restaurants, err := h.service.GetByAdministrator(r.Context(), user)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /restaurantadmin/myrestaurants - Rejected: %v", err)
		} else {
			h.logger.Error("GET /restaurantadmin/myrestaurants - Failed to get restaurants: %v", err)
		}
		return
	}

	h.logger.Info("GET /restaurantadmin/myrestaurants - Found %d restaurants for user_id=%s", restaurants.Total, user.ID)
	handlers.RespondJSON(w, http.StatusOK, restaurants)
}
