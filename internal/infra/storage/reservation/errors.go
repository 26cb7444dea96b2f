package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrInsert возвращается при ошибке вставки документа
	ErrInsert = errors.New("reservation.repository: failed to insert document")

	// ErrFind возвращается при ошибке чтения документов
	ErrFind = errors.New("reservation.repository: failed to find documents")

	// ErrUpdate возвращается при ошибке обновления документа
	ErrUpdate = errors.New("reservation.repository: failed to update document")

	// ErrDelete возвращается при ошибке удаления документа
	ErrDelete = errors.New("reservation.repository: failed to delete document")

	// ErrDecode возвращается при ошибке декодирования документа
	ErrDecode = errors.New("reservation.repository: failed to decode document")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("reservation.repository: reservation cannot be cancelled")
)
