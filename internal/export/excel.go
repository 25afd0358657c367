package export

import (
	"fmt"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Bookings"

// BookingsWorkbook builds an xlsx report with one row per booking. The
// caller owns closing the returned file.
func BookingsWorkbook(bookings []*domain.Booking) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{
		"ID", "Guest", "Email", "Phone", "Room Type",
		"Check-In", "Check-Out", "Adults", "Children", "Nights",
		"Nightly Rate", "Total Price", "Amount Paid",
		"Status", "Payment Status", "Booked At",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err = f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("set header: %w", err)
		}
	}

	for i, b := range bookings {
		row := i + 2
		values := []any{
			b.ID, b.GuestName, b.Email, b.Phone, string(b.RoomType),
			b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"),
			b.Adults, b.Children, b.TotalDays,
			b.BookedRate.StringFixed(2), b.TotalPrice.StringFixed(2), b.AmountPaid.StringFixed(2),
			string(b.Status), string(b.PaymentStatus),
			b.BookingDate.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if err = f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("set cell: %w", err)
			}
		}
	}

	return f, nil
}
