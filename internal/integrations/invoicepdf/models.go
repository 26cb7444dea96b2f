package invoicepdf

import "github.com/m04kA/SMC-HospitalityService/internal/domain"

// Document данные для печати счета
type Document struct {
	Invoice      *domain.Invoice
	BusinessName string
	CustomerName string
}
