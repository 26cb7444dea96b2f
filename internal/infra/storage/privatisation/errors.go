package privatisation

import "errors"

var (
	// ErrOptionNotFound возвращается, когда опция приватизации не найдена
	ErrOptionNotFound = errors.New("privatisation.repository: option not found")

	// ErrInsert возвращается при ошибке вставки документа
	ErrInsert = errors.New("privatisation.repository: failed to insert document")

	// ErrFind возвращается при ошибке чтения документов
	ErrFind = errors.New("privatisation.repository: failed to find documents")

	// ErrUpdate возвращается при ошибке обновления документа
	ErrUpdate = errors.New("privatisation.repository: failed to update document")

	// ErrDelete возвращается при ошибке удаления документа
	ErrDelete = errors.New("privatisation.repository: failed to delete document")
)
