package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

var BookingStatuses = []BookingStatus{
	BookingStatusPending, BookingStatusConfirmed,
	BookingStatusCancelled, BookingStatusCompleted,
}

var PaymentStatuses = []PaymentStatus{
	PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusPaid,
}

func (s BookingStatus) Valid() bool {
	for _, known := range BookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s PaymentStatus) Valid() bool {
	for _, known := range PaymentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Booking struct {
	ID              int64           `json:"id"`
	HotelID         int64           `json:"hotel_id"`
	GuestName       string          `json:"guest_name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	RoomType        RoomType        `json:"room_type"`
	BookingDate     time.Time       `json:"booking_date"`
	CheckIn         time.Time       `json:"check_in"`
	CheckOut        time.Time       `json:"check_out"`
	Adults          int             `json:"adults"`
	Children        int             `json:"children"`
	TotalDays       int             `json:"total_days"`
	BookedRate      decimal.Decimal `json:"booked_rate"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          BookingStatus   `json:"status"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	SpecialRequests string          `json:"special_requests"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ReservationInput carries the raw reservation form exactly as submitted.
// Dates and guest counts stay strings until the service validates them.
type ReservationInput struct {
	GuestName       string
	Phone           string
	Email           string
	CheckinDate     string
	CheckoutDate    string
	Adults          string
	Children        string
	RoomType        string
	SpecialRequests string
	Notes           string
}

// BookingUpdate is applied by the edit path on top of an existing booking.
// Pricing fields are recomputed by the service, never taken from the caller.
type BookingUpdate struct {
	ReservationInput
	Status        string
	PaymentStatus string
	AmountPaid    string
}
