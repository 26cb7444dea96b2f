package invoices

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	invoiceRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/invoice"
)

// Generator формирует счет с одной строкой из сохраненного бронирования
type Generator struct {
	repo      InvoiceRepository
	txManager TransactionManager
	currency  string
	now       func() time.Time
	logger    Logger
}

// NewGenerator создает новый экземпляр генератора счетов
func NewGenerator(repo InvoiceRepository, txManager TransactionManager, currency string, logger Logger) *Generator {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &Generator{
		repo:      repo,
		txManager: txManager,
		currency:  currency,
		now:       time.Now,
		logger:    logger,
	}
}

// Generate создает счет: одна строка {описание, price=total, quantity=1, total}.
// Счет и строка пишутся в одной транзакции.
func (g *Generator) Generate(ctx context.Context, r *domain.Reservation) (*domain.Invoice, error) {
	if r == nil || r.TotalAmount <= 0 || r.BusinessID.IsZero() || r.ID.IsZero() {
		return nil, ErrNothingToInvoice
	}

	issuedAt := g.now().UTC()
	inv := &domain.Invoice{
		Number:        newInvoiceNumber(issuedAt),
		ReservationID: r.ID.Hex(),
		BusinessID:    r.BusinessID.Hex(),
		BusinessType:  r.BusinessType,
		Items: []domain.InvoiceItem{{
			Description: r.InvoiceDescription(),
			Price:       r.TotalAmount,
			Quantity:    1,
			Total:       r.TotalAmount,
		}},
		Total:    r.TotalAmount,
		Currency: g.currency,
		Status:   domain.InvoiceStatusIssued,
		IssuedAt: issuedAt,
	}

	var created *domain.Invoice
	err := g.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = g.repo.Create(txCtx, inv)
		return err
	})
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceExists) {
			return nil, ErrInvoiceExists
		}
		return nil, fmt.Errorf("%w: Generate - repository error: %v", ErrInternal, err)
	}

	g.logger.Info("Generate: invoice %s created for reservation=%s total=%.2f",
		created.Number, created.ReservationID, created.Total)
	return created, nil
}

// newInvoiceNumber формат INV-YYYYMMDD-xxxxxxxx
func newInvoiceNumber(at time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("INV-%s-%s", at.Format("20060102"), suffix)
}
