package list_owner_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_reservations"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidQuery    = "некорректные параметры выборки"
	msgUnknownCategory = "неизвестная категория выборки"
	msgUserNotFound    = "пользователь не найден"
	msgMissingUserID   = "отсутствует ID пользователя"
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

// Handle GET /api/v1/reservations/owner?state=ALL&from=0&size=10
// Выборка бронирований вещей, которыми пользователь владеет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations/owner - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Разбираем query параметры (общие с выборкой автора)
	query, err := list_reservations.ParseListQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reservations/owner - Invalid query: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	// Получаем бронирования вещей владельца
	result, err := h.service.List(r.Context(), &models.ListReservationsRequest{
		UserID: userID,
		Role:   domain.RoleOwner,
		State:  query.State,
		From:   query.From,
		Size:   query.Size,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrUnknownCategory):
			h.logger.Warn("GET /reservations/owner - Unknown state: user_id=%d, state=%s", userID, query.State)
			handlers.RespondBadRequest(w, msgUnknownCategory)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations/owner - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, reservations.ErrUserNotFound):
			h.logger.Warn("GET /reservations/owner - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /reservations/owner - Failed to list reservations: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/owner - Reservations retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result.Reservations)
}
