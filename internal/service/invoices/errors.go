package invoices

import "errors"

var (
	// ErrInvoiceNotFound возвращается, когда счет не найден
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrNothingToInvoice возвращается, когда у бронирования нет суммы или бизнеса
	ErrNothingToInvoice = errors.New("reservation has nothing to invoice")

	// ErrInvoiceExists возвращается, когда счет для бронирования уже создан
	ErrInvoiceExists = errors.New("invoice already exists for reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
