package invoices

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/internal/integrations/invoicepdf"
)

// InvoiceRepository интерфейс репозитория счетов
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	GetByReservationID(ctx context.Context, reservationID string) (*domain.Invoice, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*domain.Invoice, error)
}

// BusinessRepository интерфейс репозитория бизнесов (для шапки PDF)
type BusinessRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID, businessType domain.BusinessType) (*domain.Business, error)
}

// ReservationRepository интерфейс репозитория бронирований (для шапки PDF)
type ReservationRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Reservation, error)
}

// PDFRenderer интерфейс печати счета
type PDFRenderer interface {
	Render(doc invoicepdf.Document) ([]byte, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
