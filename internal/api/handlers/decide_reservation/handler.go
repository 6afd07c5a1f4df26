package decide_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	decideReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/decide_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidApproved      = "некорректный параметр approved"
	msgNotFound             = "бронирование не найдено"
	msgAlreadyDecided       = "по бронированию уже принято решение"
	msgTimeConflict         = "интервал пересекается с одобренным бронированием"
	msgMissingUserID        = "отсутствует ID пользователя"
)

type Handler struct {
	usecase DecideReservationUseCase
	logger  Logger
}

func NewHandler(usecase DecideReservationUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}?approved=true|false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Параметр approved обязателен
	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid approved parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApproved)
		return
	}

	// Принимаем решение по бронированию
	result, err := h.usecase.Execute(r.Context(), &decideReservation.Request{
		UserID:        userID,
		ReservationID: reservationID,
		Approved:      approved,
	})
	if err != nil {
		switch {
		case errors.Is(err, decideReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id} - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		case errors.Is(err, decideReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Reservation not found: reservation_id=%d, user_id=%d",
				reservationID, userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, decideReservation.ErrAlreadyDecided):
			h.logger.Warn("PATCH /reservations/{id} - Already decided: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgAlreadyDecided)

		case errors.Is(err, decideReservation.ErrTimeConflict):
			h.logger.Warn("PATCH /reservations/{id} - Time conflict: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgTimeConflict)

		default:
			h.logger.Error("PATCH /reservations/{id} - Failed to decide reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id} - Reservation decided successfully: reservation_id=%d, status=%s",
		result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
