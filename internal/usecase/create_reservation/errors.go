package create_reservation

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_reservation: user not found")

	// ErrItemNotFound возвращается, когда вещь не найдена
	// Также возвращается при попытке владельца забронировать собственную вещь:
	// факт существования вещи сознательно не раскрывается (см. validation.go)
	ErrItemNotFound = errors.New("create_reservation: item not found")

	// ErrItemUnavailable возвращается, когда вещь недоступна для бронирования
	ErrItemUnavailable = errors.New("create_reservation: item is not available")

	// ErrStartInPast возвращается, когда дата начала раньше текущего времени
	ErrStartInPast = errors.New("create_reservation: start date is in the past")

	// ErrInvalidPeriod возвращается, когда дата окончания раньше или равна дате начала
	ErrInvalidPeriod = errors.New("create_reservation: end date must be after start date")

	// ErrTimeConflict возвращается, когда интервал пересекается с одобренным бронированием
	ErrTimeConflict = errors.New("create_reservation: interval overlaps an approved reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
