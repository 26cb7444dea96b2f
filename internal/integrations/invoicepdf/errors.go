package invoicepdf

import "errors"

var (
	// ErrRender возвращается при ошибке формирования PDF
	ErrRender = errors.New("invoicepdf: failed to render document")

	// ErrQRCode возвращается при ошибке генерации QR-кода
	ErrQRCode = errors.New("invoicepdf: failed to generate qr code")
)
