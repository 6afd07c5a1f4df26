package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64     // ID пользователя, запрашивающего бронирование
	ItemID    int64     // ID вещи
	StartDate time.Time // Начало интервала бронирования
	EndDate   time.Time // Конец интервала бронирования (не включается)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64     // ID созданного бронирования
	ItemID      int64     // ID вещи
	RequesterID int64     // ID автора бронирования
	OwnerID     int64     // ID владельца вещи
	StartDate   time.Time // Начало интервала
	EndDate     time.Time // Конец интервала
	Status      string    // Статус бронирования (WAITING при создании)

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
