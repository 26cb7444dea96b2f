package invoicepdf

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

const (
	qrSize     = 256
	qrImageKey = "invoice-qr"
)

// Renderer печатает счета в PDF (A4, одна страница)
type Renderer struct{}

// NewRenderer создает новый экземпляр рендерера
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render формирует PDF счета. QR-код содержит номер счета, бронирование и сумму.
func (r *Renderer) Render(doc Document) ([]byte, error) {
	inv := doc.Invoice
	if inv == nil {
		return nil, fmt.Errorf("%w: invoice is required", ErrRender)
	}

	qrPayload := fmt.Sprintf("%s|%s|%.2f %s", inv.Number, inv.ReservationID, inv.Total, inv.Currency)
	qrPNG, err := qrcode.Encode(qrPayload, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQRCode, err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+inv.Number, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Заголовок
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, tr("Invoice "+inv.Number))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	if doc.BusinessName != "" {
		pdf.Cell(0, 7, tr(doc.BusinessName))
		pdf.Ln(7)
	}
	pdf.Cell(0, 7, "Date: "+inv.IssuedAt.Format(domain.DateFormat))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Reservation: "+inv.ReservationID)
	pdf.Ln(7)
	if doc.CustomerName != "" {
		pdf.Cell(0, 7, tr("Customer: "+doc.CustomerName))
		pdf.Ln(7)
	}
	pdf.Ln(6)

	// QR-код справа от шапки
	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(qrImageKey, imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions(qrImageKey, 160, 10, 35, 35, false, imageOpts, 0, "")

	// Таблица строк
	widths := []float64{95, 30, 25, 30}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range []string{"Description", "Price", "Qty", "Total"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	for _, item := range inv.Items {
		pdf.CellFormat(widths[0], 8, tr(item.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, money(item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 8, money(item.Total), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], 9, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 9, money(inv.Total)+" "+inv.Currency, "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
