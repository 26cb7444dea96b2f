package business

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business.repository: business not found")

	// ErrInsert возвращается при ошибке вставки документа
	ErrInsert = errors.New("business.repository: failed to insert document")

	// ErrFind возвращается при ошибке чтения документов
	ErrFind = errors.New("business.repository: failed to find documents")

	// ErrUpdate возвращается при ошибке обновления документа
	ErrUpdate = errors.New("business.repository: failed to update document")

	// ErrDecode возвращается при ошибке декодирования документа
	ErrDecode = errors.New("business.repository: failed to decode document")
)
