package voucher

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
)

const (
	qrSize      = 256
	qrImageName = "reference-qr"
)

var (
	// ErrNoReference возвращается для записи без номера брони
	ErrNoReference = errors.New("voucher: record has no reference number")

	// ErrRender возвращается при ошибке формирования PDF
	ErrRender = errors.New("voucher: failed to render")
)

// Renderer формирует PDF-ваучер с QR-кодом номера брони
type Renderer struct {
	issuer string
}

// NewRenderer создает renderer. issuer печатается в заголовке ваучера.
func NewRenderer(issuer string) *Renderer {
	return &Renderer{issuer: issuer}
}

// Render формирует ваучер для записи бронирования
func (r *Renderer) Render(record domain.BookingRecord) ([]byte, error) {
	ref := record.ReferenceNo()
	if ref == "" {
		return nil, ErrNoReference
	}

	qrPNG, err := qrcode.Encode(ref, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("%w: qr code: %v", ErrRender, err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, tr(r.issuer+" - Tour Voucher"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	rows := [][2]string{
		{"Reference No", ref},
		{"Tour", record.TourName},
		{"Tour date", record.TourDate},
		{"Start time", record.StartTime},
		{"Booking No", fmt.Sprintf("%d", record.UniqueNo)},
		{"Booked at", record.BookedAt.UTC().Format("2006-01-02 15:04 MST")},
	}
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(40, 8, tr(row[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(0, 8, tr(row[1]), "", 1, "L", false, 0, "")
	}

	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader(qrImageName, imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions(qrImageName, 150, 25, 40, 40, false, imgOpts, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Services", "B", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 10)
	header := []string{"Booking ID", "Confirmation", "Service ID", "Status"}
	widths := []float64{35, 55, 45, 40}
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, line := range record.Result.Details {
		cells := []string{
			fmt.Sprintf("%d", line.BookingID),
			line.ConfirmationNo,
			line.ServiceUniqueID,
			line.Status,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, tr(c), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 5, "Present this voucher with the QR code at the meeting point. Cancelled services are not valid for entry.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
