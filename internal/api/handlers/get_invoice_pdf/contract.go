package get_invoice_pdf

import (
	"context"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

type InvoiceService interface {
	RenderPDF(ctx context.Context, id int64) ([]byte, *domain.Invoice, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
