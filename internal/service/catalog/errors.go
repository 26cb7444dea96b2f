package catalog

import "errors"

var (
	// ErrItemNotFound возвращается, когда элемент каталога не найден
	ErrItemNotFound = errors.New("catalog item not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
