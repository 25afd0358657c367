package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/export"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	"github.com/stpnv0/HotelBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	CreateReservation(ctx context.Context, input domain.ReservationInput) (*domain.Booking, error)
	EditReservation(ctx context.Context, id int64, upd domain.BookingUpdate) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error)
	ListUpcoming(ctx context.Context) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
	Confirm(ctx context.Context, id int64) (*domain.Booking, error)
	RecordPayment(ctx context.Context, id int64, amount string) (*domain.Booking, error)
	GetRoomRates(ctx context.Context, force bool) map[domain.RoomType]decimal.Decimal
	Stats(ctx context.Context) (*domain.BookingStats, error)
}

type RateSvc interface {
	Upsert(ctx context.Context, roomType, price, description string) (*domain.RoomRate, error)
}

type HotelSvc interface {
	Info(ctx context.Context) (*domain.Hotel, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ChangeRole(ctx context.Context, id int64, role domain.Role) error
}

type TokenIssuer interface {
	GenerateToken(user *domain.User) (string, error)
}

type Handler struct {
	reservations ReservationSvc
	rates        RateSvc
	hotel        HotelSvc
	users        UserSvc
	tokens       TokenIssuer
}

func NewHandler(reservations ReservationSvc, rates RateSvc, hotel HotelSvc, users UserSvc, tokens TokenIssuer) *Handler {
	return &Handler{
		reservations: reservations,
		rates:        rates,
		hotel:        hotel,
		users:        users,
		tokens:       tokens,
	}
}

// Public

func (h *Handler) GetHotel(c *ginext.Context) {
	hotel, err := h.hotel.Info(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHotelResponse(hotel))
}

func (h *Handler) ListRates(c *ginext.Context) {
	force := c.Query("refresh") == "true"
	rates := h.reservations.GetRoomRates(c.Request.Context(), force)
	c.JSON(http.StatusOK, dto.ToRateResponses(rates))
}

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.reservations.CreateReservation(c.Request.Context(), toReservationInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// Privileged roles are assigned by an admin afterwards.
	user, err := h.users.Register(c.Request.Context(), domain.CreateUserInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Role:     domain.RoleCustomer,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.tokens.GenerateToken(user)
	if err != nil {
		h.handleError(c, fmt.Errorf("issue token: %w", err))
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Authenticated

func (h *Handler) MyBookings(c *ginext.Context) {
	bookings, err := h.reservations.ListByEmail(c.Request.Context(), middleware.CallerEmail(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	booking, err := h.reservations.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	role := middleware.CallerRole(c)
	if !role.CanViewBooking(middleware.CallerEmail(c), booking) {
		// Hide existence from customers probing other ids.
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrBookingNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Staff

func (h *Handler) ListBookings(c *ginext.Context) {
	if email := c.Query("email"); email != "" {
		bookings, err := h.reservations.ListByEmail(c.Request.Context(), email)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
		return
	}

	bookings, err := h.reservations.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) ListUpcomingBookings(c *ginext.Context) {
	bookings, err := h.reservations.ListUpcoming(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) EditBooking(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req dto.EditReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.reservations.EditReservation(c.Request.Context(), id, domain.BookingUpdate{
		ReservationInput: toReservationInput(req.ReservationRequest),
		Status:           req.Status,
		PaymentStatus:    req.PaymentStatus,
		AmountPaid:       req.AmountPaid,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	if err := h.reservations.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	booking, err := h.reservations.Confirm(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) RecordPayment(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.reservations.RecordPayment(c.Request.Context(), id, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetStats(c *ginext.Context) {
	stats, err := h.reservations.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	role := middleware.CallerRole(c)
	c.JSON(http.StatusOK, dto.ToStatsResponse(stats, role.CanViewFinancialData()))
}

// Admin

func (h *Handler) UpsertRate(c *ginext.Context) {
	var req dto.UpsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rate, err := h.rates.Upsert(c.Request.Context(), req.RoomType, req.PricePerNight, req.Description)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RateResponse{
		RoomType:      string(rate.RoomType),
		PricePerNight: rate.PricePerNight.StringFixed(2),
	})
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ChangeUserRole(c *ginext.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.users.ChangeRole(c.Request.Context(), id, domain.Role(req.Role)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "role updated"})
}

func (h *Handler) ExportBookings(c *ginext.Context) {
	bookings, err := h.reservations.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	f, err := export.BookingsWorkbook(bookings)
	if err != nil {
		h.handleError(c, fmt.Errorf("build workbook: %w", err))
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	if err = f.Write(c.Writer); err != nil {
		c.Set("error", err.Error())
	}
}

func bookingID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return 0, false
	}
	return id, true
}

func toReservationInput(req dto.ReservationRequest) domain.ReservationInput {
	return domain.ReservationInput{
		GuestName:       req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		CheckinDate:     req.CheckinDate,
		CheckoutDate:    req.CheckoutDate,
		Adults:          req.Adults,
		Children:        req.Children,
		RoomType:        req.RoomType,
		SpecialRequests: req.SpecialRequests,
		Notes:           req.Notes,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrHotelNotConfigured),
		errors.Is(err, domain.ErrRateNotConfigured):
		// Operator problem, not guest input; details stay in the logs.
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "booking is temporarily unavailable"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
