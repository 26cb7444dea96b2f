package domain

import "time"

// InvoiceStatus represents the status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusIssued InvoiceStatus = "issued"
	InvoiceStatusPaid   InvoiceStatus = "paid"
	InvoiceStatusVoid   InvoiceStatus = "void"
)

// Invoice is derived from a reservation on a best-effort basis
type Invoice struct {
	ID            int64
	Number        string
	ReservationID string
	BusinessID    string
	BusinessType  BusinessType
	Items         []InvoiceItem
	Total         float64
	Currency      string
	Status        InvoiceStatus
	IssuedAt      time.Time
	CreatedAt     time.Time
}

// InvoiceItem is one line of an invoice
type InvoiceItem struct {
	ID          int64
	InvoiceID   int64
	Description string
	Price       float64
	Quantity    int
	Total       float64
}
