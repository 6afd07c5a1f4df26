package domain

import "errors"

var (
	// ErrAlreadyDecided возвращается при попытке повторно решить бронирование
	ErrAlreadyDecided = errors.New("domain: reservation already decided")

	// ErrUnknownCategory возвращается при неизвестной категории выборки
	ErrUnknownCategory = errors.New("domain: unknown reservation category")
)
