package export

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingsWorkbook(t *testing.T) {
	checkin := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.Local)
	bookings := []*domain.Booking{
		{
			ID:            7,
			GuestName:     "Nguyen Van A",
			Email:         "guest@example.com",
			RoomType:      domain.RoomOneBedBalcony,
			CheckIn:       checkin,
			CheckOut:      checkin.AddDate(0, 0, 2),
			Adults:        2,
			TotalDays:     2,
			BookedRate:    decimal.NewFromInt(1500000),
			TotalPrice:    decimal.NewFromInt(3000000),
			AmountPaid:    decimal.Zero,
			Status:        domain.BookingStatusConfirmed,
			PaymentStatus: domain.PaymentStatusUnpaid,
			BookingDate:   checkin,
		},
		{
			ID:        8,
			GuestName: "Tran Thi B",
			RoomType:  domain.RoomTwoBedCondotel,
		},
	}

	f, err := BookingsWorkbook(bookings)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Bookings", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	guest, err := f.GetCellValue("Bookings", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Nguyen Van A", guest)

	total, err := f.GetCellValue("Bookings", "L2")
	require.NoError(t, err)
	assert.Equal(t, "3000000.00", total)

	secondGuest, err := f.GetCellValue("Bookings", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Tran Thi B", secondGuest)
}

func TestBookingsWorkbook_Empty(t *testing.T) {
	f, err := BookingsWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
