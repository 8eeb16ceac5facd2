package change_opening_hours

import "errors"

var (
	// ErrNilCommand возвращается, когда запрос или команда не переданы (ошибка программиста)
	ErrNilCommand = errors.New("change_opening_hours: command is nil")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("change_opening_hours: internal error")
)
