package create_privatisation_v2

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("create_privatisation_v2: restaurant not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_privatisation_v2: internal error")
)
