package decide_reservation

import "time"

// Request модель запроса на решение по бронированию
type Request struct {
	UserID        int64 // ID пользователя, принимающего решение (должен быть владельцем вещи)
	ReservationID int64 // ID бронирования
	Approved      bool  // true - одобрить, false - отклонить
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID          int64     // ID бронирования
	ItemID      int64     // ID вещи
	RequesterID int64     // ID автора бронирования
	OwnerID     int64     // ID владельца вещи
	StartDate   time.Time // Начало интервала
	EndDate     time.Time // Конец интервала
	Status      string    // Новый статус (APPROVED или REJECTED)

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
