package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	// Также возвращается, когда пользователь не участник бронирования:
	// чужая бронь не раскрывается
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrItemNotFound возвращается, когда вещь не найдена
	// Также возвращается, когда расписание вещи запрашивает не владелец
	ErrItemNotFound = errors.New("item not found")

	// ErrUnknownCategory возвращается при неизвестной категории выборки
	ErrUnknownCategory = errors.New("unknown reservation category")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
