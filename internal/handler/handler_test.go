package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/HotelBooker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type handlerFixture struct {
	reservations *hmocks.MockReservationSvc
	rates        *hmocks.MockRateSvc
	hotel        *hmocks.MockHotelSvc
	users        *hmocks.MockUserSvc
	tokens       *hmocks.MockTokenIssuer
}

// setupRouter wires the handler without the production auth middleware;
// tests impersonate a caller through the X-Role and X-Email headers.
func setupRouter(t *testing.T) (*handlerFixture, http.Handler) {
	t.Helper()

	f := &handlerFixture{
		reservations: hmocks.NewMockReservationSvc(t),
		rates:        hmocks.NewMockRateSvc(t),
		hotel:        hmocks.NewMockHotelSvc(t),
		users:        hmocks.NewMockUserSvc(t),
		tokens:       hmocks.NewMockTokenIssuer(t),
	}

	h := NewHandler(f.reservations, f.rates, f.hotel, f.users, f.tokens)

	r := ginext.New("test")
	r.Use(func(c *ginext.Context) {
		if role := c.GetHeader("X-Role"); role != "" {
			c.Set("user_role", domain.Role(role))
		}
		if email := c.GetHeader("X-Email"); email != "" {
			c.Set("user_email", email)
		}
	})

	api := r.Group("/api")
	{
		api.GET("/hotel", h.GetHotel)
		api.GET("/rates", h.ListRates)
		api.POST("/reservations", h.CreateReservation)
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/my/bookings", h.MyBookings)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PUT("/bookings/:id", h.EditBooking)
		api.DELETE("/bookings/:id", h.DeleteBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/payments", h.RecordPayment)
		api.GET("/stats", h.GetStats)
		api.PUT("/admin/rates", h.UpsertRate)
		api.PUT("/admin/users/:id/role", h.ChangeUserRole)
	}

	return f, r
}

func sampleBooking() *domain.Booking {
	checkin := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.Local)
	return &domain.Booking{
		ID:            7,
		HotelID:       1,
		GuestName:     "Nguyen Van A",
		Email:         "guest@example.com",
		Phone:         "+84 90 123 4567",
		RoomType:      domain.RoomOneBedBalcony,
		BookingDate:   time.Now(),
		CheckIn:       checkin,
		CheckOut:      checkin.AddDate(0, 0, 2),
		Adults:        2,
		Children:      1,
		TotalDays:     2,
		BookedRate:    decimal.NewFromInt(1500000),
		TotalPrice:    decimal.NewFromInt(3000000),
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
		AmountPaid:    decimal.Zero,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	f, r := setupRouter(t)

	f.reservations.EXPECT().CreateReservation(mock.Anything, mock.Anything).Return(sampleBooking(), nil)

	w := doJSON(t, r, http.MethodPost, "/api/reservations", dto.ReservationRequest{
		Name:         "Nguyen Van A",
		Phone:        "+84 90 123 4567",
		Email:        "guest@example.com",
		CheckinDate:  "2026-09-10",
		CheckoutDate: "2026-09-12",
		Adults:       "2",
		RoomType:     "1 bed balcony room",
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "one_bed_balcony_room", resp.RoomType)
	assert.Equal(t, "2026-09-10", resp.CheckIn)
	assert.Equal(t, "3000000.00", resp.TotalPrice)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreateReservation_ValidationError(t *testing.T) {
	f, r := setupRouter(t)

	f.reservations.EXPECT().CreateReservation(mock.Anything, mock.Anything).
		Return(nil, domain.ErrValidation)

	w := doJSON(t, r, http.MethodPost, "/api/reservations", dto.ReservationRequest{}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_RateNotConfigured(t *testing.T) {
	f, r := setupRouter(t)

	f.reservations.EXPECT().CreateReservation(mock.Anything, mock.Anything).
		Return(nil, domain.ErrRateNotConfigured)

	w := doJSON(t, r, http.MethodPost, "/api/reservations", dto.ReservationRequest{
		Name: "Nguyen Van A",
	}, nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "booking is temporarily unavailable")
	// Configuration details never leak to guests.
	assert.NotContains(t, w.Body.String(), "rate")
}

func TestHandler_GetBooking_StaffSeesAny(t *testing.T) {
	f, r := setupRouter(t)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(7)).Return(sampleBooking(), nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/7", nil, map[string]string{
		"X-Role": "staff", "X-Email": "staff@example.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetBooking_CustomerHiddenFromOthers(t *testing.T) {
	f, r := setupRouter(t)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(7)).Return(sampleBooking(), nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/7", nil, map[string]string{
		"X-Role": "customer", "X-Email": "other@example.com",
	})

	// Existence is hidden, not forbidden.
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBooking_CustomerSeesOwn(t *testing.T) {
	f, r := setupRouter(t)

	f.reservations.EXPECT().GetByID(mock.Anything, int64(7)).Return(sampleBooking(), nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/7", nil, map[string]string{
		"X-Role": "customer", "X-Email": "Guest@Example.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/abc", nil, map[string]string{"X-Role": "staff"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListRates_RefreshParam(t *testing.T) {
	f, r := setupRouter(t)

	rates := map[domain.RoomType]decimal.Decimal{
		domain.RoomOneBedBalcony:  decimal.NewFromInt(1500000),
		domain.RoomTwoBedCondotel: decimal.NewFromInt(2500000),
	}
	f.reservations.EXPECT().GetRoomRates(mock.Anything, true).Return(rates)

	w := doJSON(t, r, http.MethodGet, "/api/rates?refresh=true", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	// Responses follow the canonical room-type order.
	assert.Equal(t, "one_bed_balcony_room", resp[0].RoomType)
	assert.Equal(t, "two_bed_condotel_balcony", resp[1].RoomType)
	assert.Equal(t, "1500000.00", resp[0].PricePerNight)
}

func TestHandler_ConfirmBooking(t *testing.T) {
	f, r := setupRouter(t)

	confirmed := sampleBooking()
	confirmed.Status = domain.BookingStatusConfirmed
	f.reservations.EXPECT().Confirm(mock.Anything, int64(7)).Return(confirmed, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/7/confirm", nil, map[string]string{"X-Role": "staff"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)
}

func TestHandler_RecordPayment(t *testing.T) {
	f, r := setupRouter(t)

	paid := sampleBooking()
	paid.AmountPaid = decimal.NewFromInt(3000000)
	paid.PaymentStatus = domain.PaymentStatusPaid
	f.reservations.EXPECT().RecordPayment(mock.Anything, int64(7), "3000000").Return(paid, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/7/payments", dto.PaymentRequest{
		Amount: "3000000",
	}, map[string]string{"X-Role": "staff"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"payment_status":"paid"`)
}

func TestHandler_RecordPayment_MissingAmount(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/7/payments", map[string]string{}, map[string]string{"X-Role": "staff"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteBooking_NotFound(t *testing.T) {
	f, r := setupRouter(t)

	f.reservations.EXPECT().Delete(mock.Anything, int64(99)).Return(domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/99", nil, map[string]string{"X-Role": "staff"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Stats ---

func TestHandler_GetStats_AdminSeesFinancials(t *testing.T) {
	f, r := setupRouter(t)

	f.reservations.EXPECT().Stats(mock.Anything).Return(&domain.BookingStats{
		TotalBookings: 12,
		TotalRevenue:  decimal.NewFromInt(36000000),
		AmountUnpaid:  decimal.NewFromInt(9000000),
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/stats", nil, map[string]string{"X-Role": "admin"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_revenue":"36000000.00"`)
}

func TestHandler_GetStats_StaffHidesFinancials(t *testing.T) {
	f, r := setupRouter(t)

	f.reservations.EXPECT().Stats(mock.Anything).Return(&domain.BookingStats{
		TotalBookings: 12,
		TotalRevenue:  decimal.NewFromInt(36000000),
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/stats", nil, map[string]string{"X-Role": "staff"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_bookings":12`)
	assert.NotContains(t, w.Body.String(), "total_revenue")
}

// --- Auth ---

func TestHandler_Register_ForcesCustomerRole(t *testing.T) {
	f, r := setupRouter(t)

	f.users.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in domain.CreateUserInput) bool {
		return in.Role == domain.RoleCustomer
	})).Return(&domain.User{
		ID:    3,
		Email: "new@example.com",
		Role:  domain.RoleCustomer,
	}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Email:    "new@example.com",
		FullName: "New User",
		Password: "secret-password",
		Role:     "admin", // must be ignored
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	f, r := setupRouter(t)

	user := &domain.User{ID: 3, Email: "guest@example.com", Role: domain.RoleCustomer}
	f.users.EXPECT().Authenticate(mock.Anything, "guest@example.com", "secret-password").Return(user, nil)
	f.tokens.EXPECT().GenerateToken(user).Return("signed.jwt.token", nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "guest@example.com",
		Password: "secret-password",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, "guest@example.com", resp.User.Email)
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	f, r := setupRouter(t)

	f.users.EXPECT().Authenticate(mock.Anything, "guest@example.com", "wrong").
		Return(nil, domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "guest@example.com",
		Password: "wrong",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_MyBookings_UsesCallerEmail(t *testing.T) {
	f, r := setupRouter(t)

	f.reservations.EXPECT().ListByEmail(mock.Anything, "guest@example.com").
		Return([]*domain.Booking{sampleBooking()}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/my/bookings", nil, map[string]string{
		"X-Role": "customer", "X-Email": "guest@example.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "guest@example.com", resp[0].Email)
}

// --- Admin ---

func TestHandler_UpsertRate(t *testing.T) {
	f, r := setupRouter(t)

	f.rates.EXPECT().Upsert(mock.Anything, "condotel", "2600000", "").Return(&domain.RoomRate{
		RoomType:      domain.RoomTwoBedCondotel,
		PricePerNight: decimal.NewFromInt(2600000),
	}, nil)

	w := doJSON(t, r, http.MethodPut, "/api/admin/rates", dto.UpsertRateRequest{
		RoomType:      "condotel",
		PricePerNight: "2600000",
	}, map[string]string{"X-Role": "admin"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "two_bed_condotel_balcony")
}

func TestHandler_ChangeUserRole(t *testing.T) {
	f, r := setupRouter(t)

	f.users.EXPECT().ChangeRole(mock.Anything, int64(3), domain.RoleStaff).Return(nil)

	w := doJSON(t, r, http.MethodPut, "/api/admin/users/3/role", dto.ChangeRoleRequest{
		Role: "staff",
	}, map[string]string{"X-Role": "admin"})

	assert.Equal(t, http.StatusOK, w.Code)
}
