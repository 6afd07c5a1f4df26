package decide_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	// Также возвращается, когда решающий пользователь не владелец вещи:
	// существование чужой брони не раскрывается
	ErrReservationNotFound = errors.New("decide_reservation: reservation not found")

	// ErrAlreadyDecided возвращается, когда бронирование уже в терминальном статусе
	ErrAlreadyDecided = errors.New("decide_reservation: reservation already decided")

	// ErrTimeConflict возвращается, когда одобрение создало бы пересечение
	// с другим одобренным бронированием
	ErrTimeConflict = errors.New("decide_reservation: interval overlaps an approved reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("decide_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("decide_reservation: internal error")
)
