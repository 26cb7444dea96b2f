package update_restaurant

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("update_restaurant: restaurant not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_restaurant: internal error")
)
