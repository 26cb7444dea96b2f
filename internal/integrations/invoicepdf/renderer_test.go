package invoicepdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

func TestRenderer_Render(t *testing.T) {
	inv := &domain.Invoice{
		ID:            1,
		Number:        "INV-20240601-0a1b2c3d",
		ReservationID: "665a1f2b3c4d5e6f70819203",
		Total:         280,
		Currency:      "EUR",
		IssuedAt:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Items: []domain.InvoiceItem{{
			Description: "Reservation 665a1f2b3c4d5e6f70819203",
			Price:       280,
			Quantity:    1,
			Total:       280,
		}},
	}

	out, err := NewRenderer().Render(Document{Invoice: inv, BusinessName: "Chez Léon", CustomerName: "Ada"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderer_RequiresInvoice(t *testing.T) {
	_, err := NewRenderer().Render(Document{})
	assert.ErrorIs(t, err, ErrRender)
}
