package get_invoice_pdf

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	invoiceRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/invoice"
	"github.com/m04kA/SMC-HospitalityService/internal/integrations/invoicepdf"
	"github.com/m04kA/SMC-HospitalityService/internal/service/invoices"
	"github.com/m04kA/SMC-HospitalityService/pkg/logger"
)

const ownerBusinessHex = "65f000000000000000000001"

type fakeService struct{}

func (fakeService) RenderPDF(_ context.Context, id int64) ([]byte, *domain.Invoice, error) {
	if id != 7 {
		return nil, nil, invoices.ErrInvoiceNotFound
	}
	return []byte("%PDF-1.3 fake"), &domain.Invoice{ID: 7, Number: "INV-20250601-abcdef12"}, nil
}

type fakeInvoiceRepo struct{}

func (fakeInvoiceRepo) Create(_ context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	return inv, nil
}

func (fakeInvoiceRepo) GetByID(_ context.Context, id int64) (*domain.Invoice, error) {
	if id != 1 {
		return nil, invoiceRepo.ErrInvoiceNotFound
	}
	return &domain.Invoice{
		ID:           1,
		Number:       "INV-20250601-0a1b2c3d",
		BusinessID:   ownerBusinessHex,
		BusinessType: domain.BusinessTypeRestaurant,
		Items:        []domain.InvoiceItem{{Description: "Reservation", Price: 150, Quantity: 1, Total: 150}},
		Total:        150,
		Currency:     "EUR",
		Status:       domain.InvoiceStatusIssued,
		IssuedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}, nil
}

func (fakeInvoiceRepo) GetByReservationID(context.Context, string) (*domain.Invoice, error) {
	return nil, invoiceRepo.ErrInvoiceNotFound
}

func (fakeInvoiceRepo) ListByBusiness(context.Context, string) ([]*domain.Invoice, error) {
	return nil, nil
}

type missingBusinesses struct{}

func (missingBusinesses) GetByID(context.Context, primitive.ObjectID, domain.BusinessType) (*domain.Business, error) {
	return nil, errors.New("not found")
}

type missingReservations struct{}

func (missingReservations) GetByID(context.Context, primitive.ObjectID) (*domain.Reservation, error) {
	return nil, errors.New("not found")
}

func serveWith(service InvoiceService, path string, principal *domain.Principal) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/invoices/{invoiceId}/pdf", NewHandler(service, logger.Nop{}).Handle)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if principal != nil {
		req = req.WithContext(domain.WithPrincipal(req.Context(), principal))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func serve(path string) *httptest.ResponseRecorder {
	return serveWith(fakeService{}, path, nil)
}

func TestHandle(t *testing.T) {
	rec := serve("/api/v1/invoices/7/pdf")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "INV-20250601-abcdef12.pdf")
	assert.True(t, len(rec.Body.Bytes()) > 4 && string(rec.Body.Bytes()[:4]) == "%PDF")

	assert.Equal(t, http.StatusNotFound, serve("/api/v1/invoices/8/pdf").Code)
	assert.Equal(t, http.StatusBadRequest, serve("/api/v1/invoices/abc/pdf").Code)
}

func TestHandle_InvoiceAccess(t *testing.T) {
	svc := invoices.NewService(fakeInvoiceRepo{}, missingBusinesses{}, missingReservations{}, invoicepdf.NewRenderer(), logger.Nop{})
	const path = "/api/v1/invoices/1/pdf"

	tests := []struct {
		name      string
		principal *domain.Principal
		want      int
	}{
		{name: "anonymous", want: http.StatusUnauthorized},
		{
			name:      "other business",
			principal: &domain.Principal{BusinessID: primitive.NewObjectID().Hex(), Role: domain.RoleOwner},
			want:      http.StatusForbidden,
		},
		{
			name:      "owner",
			principal: &domain.Principal{BusinessID: ownerBusinessHex, Role: domain.RoleOwner},
			want:      http.StatusOK,
		},
		{
			name:      "admin",
			principal: &domain.Principal{Role: domain.RoleAdmin},
			want:      http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveWith(svc, path, tt.principal)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want != http.StatusOK {
				assert.NotContains(t, rec.Header().Get("Content-Type"), "application/pdf")
			}
		})
	}
}
