package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"born2ride/internal/domain/models"
	"born2ride/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking vouchers as PDF.
type DocsService struct {
	BookingSvc BookingService
	RequestID  string
	Loader     func(int64) (models.Booking, error)
}

func (s DocsService) GenerateVoucher(bookingID int64) ([]byte, string, error) {
	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", fmt.Sprintf("booking_id=%d", bookingID))
	return buildVoucherPDF(booking)
}

func (s DocsService) loadBooking(bookingID int64) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	return s.BookingSvc.Get(bookingID)
}

func buildVoucherPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference    : %s", safe(b.BookingRef, "-")),
		fmt.Sprintf("Customer     : %s", safe(b.CustomerName, "-")),
		fmt.Sprintf("Phone        : %s", safe(b.Phone, "-")),
		fmt.Sprintf("Vendor       : %s", safe(b.VendorName, "-")),
		fmt.Sprintf("Check-in     : %s", formatStamp(b.CheckIn)),
		fmt.Sprintf("Check-out    : %s", formatStamp(b.CheckOut)),
		fmt.Sprintf("Status       : %s", string(b.Status)),
		fmt.Sprintf("Total        : %s", utils.FormatINR(b.TotalPrice)),
		fmt.Sprintf("Booked on    : %s", b.CreatedAt.Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this voucher along with a valid ID at check-in.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_%d_%s.pdf", b.ID, safeFilenamePart(b.CustomerName))
	return buf.Bytes(), filename, nil
}

func formatStamp(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "booking"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_")
	return replacer.Replace(s)
}
