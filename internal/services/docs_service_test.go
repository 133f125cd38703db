package services

import (
	"testing"
	"time"

	"born2ride/internal/domain"
	"born2ride/internal/domain/models"
)

func TestDocsServiceGenerateVoucher(t *testing.T) {
	checkIn := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	loader := func(id int64) (models.Booking, error) {
		return models.Booking{
			ID:           id,
			VendorID:     7,
			VendorName:   "Highway Rest Inn",
			BookingRef:   "a9f1e2d4-0000-4000-8000-000000000001",
			CustomerName: "Ravi Kumar",
			Phone:        "+91 98765 00001",
			CheckIn:      &checkIn,
			TotalPrice:   1200,
			Status:       domain.BookingConfirmed,
			CreatedAt:    time.Now(),
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateVoucher(12)
	if err != nil {
		t.Fatalf("GenerateVoucher returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateVoucher returned empty data")
	}
	if filename != "VOUCHER_12_Ravi_Kumar.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}
