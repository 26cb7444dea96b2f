package catalog

import "errors"

var (
	// ErrNotFound возвращается, когда элемент каталога не найден
	ErrNotFound = errors.New("catalog.repository: item not found")

	// ErrInsert возвращается при ошибке вставки документа
	ErrInsert = errors.New("catalog.repository: failed to insert document")

	// ErrFind возвращается при ошибке чтения документов
	ErrFind = errors.New("catalog.repository: failed to find documents")

	// ErrUpdate возвращается при ошибке обновления документа
	ErrUpdate = errors.New("catalog.repository: failed to update document")

	// ErrDelete возвращается при ошибке удаления документа
	ErrDelete = errors.New("catalog.repository: failed to delete document")
)
