package privatisation

import "errors"

var (
	// ErrOptionNotFound возвращается, когда опция приватизации не найдена
	ErrOptionNotFound = errors.New("privatisation option not found")

	// ErrRestaurantNotFound возвращается, когда ресторан опции не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
