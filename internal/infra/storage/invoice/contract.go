package invoice

import "github.com/m04kA/SMC-HospitalityService/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

const (
	tableInvoices     = "invoices"
	tableInvoiceItems = "invoice_items"
)

var invoiceColumns = []string{
	"id",
	"number",
	"reservation_id",
	"business_id",
	"business_type",
	"total",
	"currency",
	"status",
	"issued_at",
	"created_at",
}
