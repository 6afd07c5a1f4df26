package get_item_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

const (
	msgInvalidItemID = "некорректный ID вещи"
	msgItemNotFound  = "вещь не найдена"
	msgMissingUserID = "отсутствует ID пользователя"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/items/{itemId}/schedule
// Последнее и следующее одобренные бронирования вещи (только для владельца)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем itemId из URL
	vars := mux.Vars(r)
	itemIDStr := vars["itemId"]

	itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /items/{itemId}/schedule - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /items/{itemId}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем расписание (сервис сам проверит, что пользователь владелец)
	schedule, err := h.service.GetItemSchedule(r.Context(), itemID, userID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrItemNotFound):
			h.logger.Warn("GET /items/{itemId}/schedule - Item not found: item_id=%d, user_id=%d",
				itemID, userID)
			handlers.RespondNotFound(w, msgItemNotFound)

		default:
			h.logger.Error("GET /items/{itemId}/schedule - Failed to get schedule: item_id=%d, error=%v",
				itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /items/{itemId}/schedule - Schedule retrieved successfully: item_id=%d, user_id=%d",
		itemID, userID)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
