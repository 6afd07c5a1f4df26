package create_reservation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgInvalidPeriod   = "некорректный интервал бронирования"
	msgStartInPast     = "дата начала в прошлом"
	msgItemUnavailable = "вещь недоступна для бронирования"
	msgTimeConflict    = "интервал пересекается с одобренным бронированием"
	msgUserNotFound    = "пользователь не найден"
	msgItemNotFound    = "вещь не найдена"
	msgMissingUserID   = "отсутствует ID пользователя"
)

type Handler struct {
	usecase CreateReservationUseCase
	logger  Logger
}

func NewHandler(usecase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Парсим тело запроса
	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	// Создаем бронирование
	result, err := h.usecase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		case errors.Is(err, createReservation.ErrStartInPast):
			h.logger.Warn("POST /reservations - Start in past: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createReservation.ErrInvalidPeriod):
			h.logger.Warn("POST /reservations - Invalid period: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, createReservation.ErrItemUnavailable):
			h.logger.Warn("POST /reservations - Item unavailable: user_id=%d, item_id=%d", userID, req.ItemID)
			handlers.RespondBadRequest(w, msgItemUnavailable)

		case errors.Is(err, createReservation.ErrTimeConflict):
			h.logger.Warn("POST /reservations - Time conflict: user_id=%d, item_id=%d", userID, req.ItemID)
			handlers.RespondBadRequest(w, msgTimeConflict)

		case errors.Is(err, createReservation.ErrUserNotFound):
			h.logger.Warn("POST /reservations - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createReservation.ErrItemNotFound):
			h.logger.Warn("POST /reservations - Item not found: user_id=%d, item_id=%d", userID, req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
