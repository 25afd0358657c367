package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/HotelBooker/internal/domain"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID              int64  `json:"id"`
	GuestName       string `json:"guest_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	RoomType        string `json:"room_type"`
	BookingDate     string `json:"booking_date"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	TotalDays       int    `json:"total_days"`
	BookedRate      string `json:"booked_rate"`
	TotalPrice      string `json:"total_price"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	AmountPaid      string `json:"amount_paid"`
	SpecialRequests string `json:"special_requests,omitempty"`
	Notes           string `json:"notes,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type RateResponse struct {
	RoomType      string `json:"room_type"`
	PricePerNight string `json:"price_per_night"`
}

type HotelResponse struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	StarRating int    `json:"star_rating"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// StatsResponse hides the financial figures from non-admin staff.
type StatsResponse struct {
	TotalBookings  int     `json:"total_bookings"`
	PendingCount   int     `json:"pending_count"`
	TodayCheckIns  int     `json:"today_check_ins"`
	TodayCheckOuts int     `json:"today_check_outs"`
	ActiveStays    int     `json:"active_stays"`
	TotalRevenue   *string `json:"total_revenue,omitempty"`
	AmountUnpaid   *string `json:"amount_unpaid,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		GuestName:       b.GuestName,
		Email:           b.Email,
		Phone:           b.Phone,
		RoomType:        string(b.RoomType),
		BookingDate:     b.BookingDate.Format(time.RFC3339),
		CheckIn:         b.CheckIn.Format(dateLayout),
		CheckOut:        b.CheckOut.Format(dateLayout),
		Adults:          b.Adults,
		Children:        b.Children,
		TotalDays:       b.TotalDays,
		BookedRate:      b.BookedRate.StringFixed(2),
		TotalPrice:      b.TotalPrice.StringFixed(2),
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		AmountPaid:      b.AmountPaid.StringFixed(2),
		SpecialRequests: b.SpecialRequests,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToRateResponses(rates map[domain.RoomType]decimal.Decimal) []RateResponse {
	resp := make([]RateResponse, 0, len(rates))
	for _, t := range domain.RoomTypes {
		if rate, ok := rates[t]; ok {
			resp = append(resp, RateResponse{
				RoomType:      string(t),
				PricePerNight: rate.StringFixed(2),
			})
		}
	}
	return resp
}

func ToHotelResponse(h *domain.Hotel) HotelResponse {
	return HotelResponse{
		Name:       h.Name,
		Address:    h.Address,
		StarRating: h.StarRating,
		Phone:      h.Phone,
		Email:      h.Email,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToStatsResponse(s *domain.BookingStats, includeFinancial bool) StatsResponse {
	resp := StatsResponse{
		TotalBookings:  s.TotalBookings,
		PendingCount:   s.PendingCount,
		TodayCheckIns:  s.TodayCheckIns,
		TodayCheckOuts: s.TodayCheckOuts,
		ActiveStays:    s.ActiveStays,
	}
	if includeFinancial {
		revenue := s.TotalRevenue.StringFixed(2)
		unpaid := s.AmountUnpaid.StringFixed(2)
		resp.TotalRevenue = &revenue
		resp.AmountUnpaid = &unpaid
	}
	return resp
}
