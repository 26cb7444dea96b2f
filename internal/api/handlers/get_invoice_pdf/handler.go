package get_invoice_pdf

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HospitalityService/internal/api/handlers"
	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/internal/service/invoices"
)

const (
	msgInvalidInvoiceID = "некорректный ID счета"
	msgNotFound         = "счет не найден"
	msgUnauthorized     = "требуется авторизация"
	msgForbidden        = "нет доступа к счету"
)

type Handler struct {
	service InvoiceService
	logger  Logger
}

func NewHandler(service InvoiceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/invoices/{invoiceId}/pdf
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := strconv.ParseInt(mux.Vars(r)["invoiceId"], 10, 64)
	if err != nil || invoiceID <= 0 {
		h.logger.Warn("GET /invoices/{id}/pdf - Invalid invoice ID: %q", mux.Vars(r)["invoiceId"])
		handlers.RespondBadRequest(w, msgInvalidInvoiceID)
		return
	}

	pdf, invoice, err := h.service.RenderPDF(r.Context(), invoiceID)
	if err != nil {
		switch {
		case errors.Is(err, invoices.ErrInvoiceNotFound):
			h.logger.Warn("GET /invoices/{id}/pdf - Invoice not found: invoice_id=%d", invoiceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrUnauthenticated):
			h.logger.Warn("GET /invoices/{id}/pdf - Anonymous request: invoice_id=%d", invoiceID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, domain.ErrForbidden):
			h.logger.Warn("GET /invoices/{id}/pdf - Access denied: invoice_id=%d", invoiceID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /invoices/{id}/pdf - Failed to render invoice: invoice_id=%d, error=%v", invoiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /invoices/{id}/pdf - Invoice rendered: invoice_id=%d, size=%d", invoiceID, len(pdf))
	handlers.RespondBinary(w, "application/pdf", invoice.Number+".pdf", pdf)
}
