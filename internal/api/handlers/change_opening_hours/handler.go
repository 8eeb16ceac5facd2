package change_opening_hours

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	changeOpeningHours "github.com/m04kA/SMC-RestaurantService/internal/usecase/change_opening_hours"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingField        = "не заполнено обязательное поле"
	msgInvalidTime         = "некорректный формат времени, ожидается HH:MM"
	msgUnknownAction       = "неизвестное действие"
)

type Handler struct {
	useCase ChangeOpeningHoursUseCase
	logger  Logger
}

func NewHandler(useCase ChangeOpeningHoursUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurantadmin/restaurants/{restaurantId}/{action}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	action := vars["action"]

	restaurantID, err := uuid.Parse(vars["restaurantId"])
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/%s - Invalid restaurant ID: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	if _, ok := commandBuilders[action]; !ok {
		h.logger.Warn("POST /restaurants/{id}/%s - Unknown action", action)
		handlers.RespondNotFound(w, msgUnknownAction)
		return
	}

	// Пустое тело допустимо для команд без параметров
	var req OpeningHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /restaurants/{id}/%s - Invalid request body: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	command, err := req.ToCommand(action)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/%s - Failed to parse request: %v", action, err)
		var fieldErr *fieldError
		if !errors.As(err, &fieldErr) {
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		message := msgMissingField
		if errors.Is(fieldErr, errInvalidTime) {
			message = msgInvalidTime
		}
		handlers.RespondBadRequest(w, message+": "+fieldErr.field)
		return
	}

	user, _ := middleware.GetUser(r.Context())

	err = h.useCase.Execute(r.Context(), &changeOpeningHours.Request{
		RestaurantID: restaurantID,
		User:         user,
		Command:      command,
	})
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /restaurants/{id}/%s - Rejected: restaurant_id=%s, error=%v", action, restaurantID, err)
		} else {
			h.logger.Error("POST /restaurants/{id}/%s - Failed: restaurant_id=%s, error=%v", action, restaurantID, err)
		}
		return
	}

	h.logger.Info("POST /restaurants/{id}/%s - Applied: restaurant_id=%s", action, restaurantID)
	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
