package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/itemservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ItemID <= 0 {
		return fmt.Errorf("%w: itemID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	return nil
}

// validatePeriod проверяет интервал бронирования относительно текущего времени
// Начало не может быть в прошлом, конец должен быть строго позже начала
func validatePeriod(start, end, now time.Time) error {
	if start.Before(now) {
		return fmt.Errorf("%w: start=%s, now=%s", ErrStartInPast,
			start.Format(time.RFC3339), now.Format(time.RFC3339))
	}

	if !start.Before(end) {
		return fmt.Errorf("%w: start=%s, end=%s", ErrInvalidPeriod,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	return nil
}

// validateItem проверяет доступность вещи для бронирования пользователем
// Владельцу собственная вещь сознательно отдается как "не найдена",
// чтобы не раскрывать причину отказа
func validateItem(item *itemservice.Item, requesterID int64) error {
	if !item.Available {
		return fmt.Errorf("%w: item id=%d", ErrItemUnavailable, item.ID)
	}

	if item.OwnerID == requesterID {
		return fmt.Errorf("%w: item id=%d", ErrItemNotFound, item.ID)
	}

	return nil
}

// findOverlapping ищет одобренное бронирование, пересекающееся с интервалом
// [start, end). Интервалы полуоткрытые: соприкосновение границ не считается
// пересечением. excludeID исключает собственную бронь при повторной проверке
func findOverlapping(approved []*domain.Reservation, start, end time.Time, excludeID int64) *domain.Reservation {
	for _, r := range approved {
		if r.ID == excludeID {
			continue
		}
		if r.Overlaps(start, end) {
			return r
		}
	}
	return nil
}
