package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
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

// Handle GET /api/v1/reservations?state=ALL&from=0&size=10
// Выборка бронирований, в которых пользователь является автором
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Разбираем query параметры
	query, err := ParseListQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid query: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	// Получаем бронирования пользователя
	result, err := h.service.List(r.Context(), &models.ListReservationsRequest{
		UserID: userID,
		Role:   domain.RoleRequester,
		State:  query.State,
		From:   query.From,
		Size:   query.Size,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrUnknownCategory):
			h.logger.Warn("GET /reservations - Unknown state: user_id=%d, state=%s", userID, query.State)
			handlers.RespondBadRequest(w, msgUnknownCategory)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, reservations.ErrUserNotFound):
			h.logger.Warn("GET /reservations - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result.Reservations)
}
