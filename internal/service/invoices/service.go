package invoices

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	invoiceRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/invoice"
	"github.com/m04kA/SMC-HospitalityService/internal/integrations/invoicepdf"
)

// Service сервис чтения и печати счетов
type Service struct {
	repo            InvoiceRepository
	businessRepo    BusinessRepository
	reservationRepo ReservationRepository
	renderer        PDFRenderer
	logger          Logger
}

// NewService создает новый экземпляр сервиса счетов
func NewService(
	repo InvoiceRepository,
	businessRepo BusinessRepository,
	reservationRepo ReservationRepository,
	renderer PDFRenderer,
	logger Logger,
) *Service {
	return &Service{
		repo:            repo,
		businessRepo:    businessRepo,
		reservationRepo: reservationRepo,
		renderer:        renderer,
		logger:          logger,
	}
}

// GetByID получает счет по ID; доступно только владельцу бизнеса
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", err)
	}
	if err := s.authorize(ctx, "GetByID", inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// GetByReservationID получает счет бронирования; доступно только владельцу бизнеса
func (s *Service) GetByReservationID(ctx context.Context, reservationID string) (*domain.Invoice, error) {
	if _, err := primitive.ObjectIDFromHex(reservationID); err != nil {
		return nil, fmt.Errorf("%w: invalid reservation id", ErrInvalidInput)
	}
	inv, err := s.repo.GetByReservationID(ctx, reservationID)
	if err != nil {
		return nil, s.mapRepoError("GetByReservationID", err)
	}
	if err := s.authorize(ctx, "GetByReservationID", inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// ListByBusiness возвращает счета бизнеса; доступно только владельцу
func (s *Service) ListByBusiness(ctx context.Context, businessID primitive.ObjectID) ([]*domain.Invoice, error) {
	if err := domain.AuthorizeBusiness(ctx, businessID); err != nil {
		s.logger.Warn("ListByBusiness: access denied to business=%s: %v", businessID.Hex(), err)
		return nil, err
	}

	invoices, err := s.repo.ListByBusiness(ctx, businessID.Hex())
	if err != nil {
		s.logger.Error("ListByBusiness: repository error for business=%s: %v", businessID.Hex(), err)
		return nil, fmt.Errorf("%w: ListByBusiness - repository error: %v", ErrInternal, err)
	}
	return invoices, nil
}

// RenderPDF печатает счет. Название бизнеса и имя клиента необязательны:
// если их не удалось получить, PDF формируется без них.
func (s *Service) RenderPDF(ctx context.Context, id int64) ([]byte, *domain.Invoice, error) {
	inv, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	doc := invoicepdf.Document{Invoice: inv}

	if businessID, err := primitive.ObjectIDFromHex(inv.BusinessID); err == nil {
		if b, err := s.businessRepo.GetByID(ctx, businessID, inv.BusinessType); err == nil {
			doc.BusinessName = b.Name
		} else {
			s.logger.Warn("RenderPDF: business=%s not loaded: %v", inv.BusinessID, err)
		}
	}

	if reservationID, err := primitive.ObjectIDFromHex(inv.ReservationID); err == nil {
		if r, err := s.reservationRepo.GetByID(ctx, reservationID); err == nil && r.Customer != nil {
			doc.CustomerName = r.Customer.Name
		} else if err != nil {
			s.logger.Warn("RenderPDF: reservation=%s not loaded: %v", inv.ReservationID, err)
		}
	}

	pdf, err := s.renderer.Render(doc)
	if err != nil {
		s.logger.Error("RenderPDF: render failed for invoice id=%d: %v", id, err)
		return nil, nil, fmt.Errorf("%w: RenderPDF - render: %v", ErrInternal, err)
	}

	s.logger.Info("RenderPDF: rendered invoice id=%d (%d bytes)", id, len(pdf))
	return pdf, inv, nil
}

// authorize проверяет, что счет принадлежит бизнесу из контекста запроса.
// Номера счетов последовательны, поэтому ID сам по себе доступа не дает.
func (s *Service) authorize(ctx context.Context, op string, inv *domain.Invoice) error {
	businessID, err := primitive.ObjectIDFromHex(inv.BusinessID)
	if err != nil {
		s.logger.Error("%s: invoice id=%d has malformed business id %q", op, inv.ID, inv.BusinessID)
		return fmt.Errorf("%w: %s - malformed business id: %v", ErrInternal, op, err)
	}
	if err := domain.AuthorizeBusiness(ctx, businessID); err != nil {
		s.logger.Warn("%s: access denied to invoice id=%d: %v", op, inv.ID, err)
		return err
	}
	return nil
}

func (s *Service) mapRepoError(op string, err error) error {
	if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
		s.logger.Warn("%s: invoice not found", op)
		return ErrInvoiceNotFound
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
