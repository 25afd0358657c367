package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// BookingRules are the deployment-variant knobs of the validation pipeline.
type BookingRules struct {
	MaxStayNights int
	RequirePhone  bool
	RequireEmail  bool
}

type ReservationService struct {
	bookingRepo ports.BookingRepo
	hotelRepo   ports.HotelRepo
	rates       *RateCache
	notifier    ports.BookingNotifier
	rules       BookingRules
	now         func() time.Time
	logger      logger.Logger
}

func NewReservationService(
	bookingRepo ports.BookingRepo,
	hotelRepo ports.HotelRepo,
	rates *RateCache,
	notifier ports.BookingNotifier,
	rules BookingRules,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
		rates:       rates,
		notifier:    notifier,
		rules:       rules,
		now:         time.Now,
		logger:      logger,
	}
}

// pricedStay is the outcome of the validation pipeline: parsed, resolved
// and priced, ready to be written onto a booking.
type pricedStay struct {
	checkin    time.Time
	checkout   time.Time
	adults     int
	children   int
	roomType   domain.RoomType
	rate       decimal.Decimal
	totalDays  int
	totalPrice decimal.Decimal
}

// CreateReservation runs the full validation pipeline and persists the
// booking as pending/unpaid. Every gate aborts on first failure; nothing
// is written unless all of them pass.
func (s *ReservationService) CreateReservation(ctx context.Context, input domain.ReservationInput) (*domain.Booking, error) {
	stay, err := s.validateStay(ctx, input)
	if err != nil {
		return nil, err
	}

	hotel, err := s.hotelRepo.GetPrimary(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve hotel: %w", err)
	}

	now := s.now()
	booking := &domain.Booking{
		HotelID:         hotel.ID,
		GuestName:       strings.TrimSpace(input.GuestName),
		Email:           strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:           strings.TrimSpace(input.Phone),
		RoomType:        stay.roomType,
		BookingDate:     now,
		CheckIn:         stay.checkin,
		CheckOut:        stay.checkout,
		Adults:          stay.adults,
		Children:        stay.children,
		TotalDays:       stay.totalDays,
		BookedRate:      stay.rate,
		TotalPrice:      stay.totalPrice,
		Status:          domain.BookingStatusPending,
		PaymentStatus:   domain.PaymentStatusUnpaid,
		AmountPaid:      decimal.Zero,
		SpecialRequests: strings.TrimSpace(input.SpecialRequests),
		Notes:           strings.TrimSpace(input.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("reservation created",
		logger.Int64("booking_id", booking.ID),
		logger.String("room_type", string(booking.RoomType)),
		logger.Int("total_days", booking.TotalDays),
		logger.String("total_price", booking.TotalPrice.String()),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// EditReservation re-runs the pipeline against the new field values and
// overwrites the mutable fields of an existing booking. The rate is always
// re-resolved fresh, so a room-type change reprices at today's rate table,
// not the one snapshotted at creation.
func (s *ReservationService) EditReservation(ctx context.Context, id int64, upd domain.BookingUpdate) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	stay, err := s.validateStay(ctx, upd.ReservationInput)
	if err != nil {
		return nil, err
	}

	status := booking.Status
	if upd.Status != "" {
		status = domain.BookingStatus(upd.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, upd.Status)
		}
	}

	payment := booking.PaymentStatus
	if upd.PaymentStatus != "" {
		payment = domain.PaymentStatus(upd.PaymentStatus)
		if !payment.Valid() {
			return nil, fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, upd.PaymentStatus)
		}
	}

	amountPaid := booking.AmountPaid
	if upd.AmountPaid != "" {
		amountPaid, err = decimal.NewFromString(upd.AmountPaid)
		if err != nil {
			return nil, fmt.Errorf("%w: amount paid must be a number", domain.ErrValidation)
		}
		if amountPaid.IsNegative() {
			return nil, fmt.Errorf("%w: amount paid cannot be negative", domain.ErrValidation)
		}
	}

	booking.GuestName = strings.TrimSpace(upd.GuestName)
	booking.Email = strings.ToLower(strings.TrimSpace(upd.Email))
	booking.Phone = strings.TrimSpace(upd.Phone)
	booking.RoomType = stay.roomType
	booking.CheckIn = stay.checkin
	booking.CheckOut = stay.checkout
	booking.Adults = stay.adults
	booking.Children = stay.children
	booking.TotalDays = stay.totalDays
	booking.BookedRate = stay.rate
	booking.TotalPrice = stay.totalPrice
	booking.Status = status
	booking.PaymentStatus = payment
	booking.AmountPaid = amountPaid
	booking.SpecialRequests = strings.TrimSpace(upd.SpecialRequests)
	booking.Notes = strings.TrimSpace(upd.Notes)
	booking.UpdatedAt = s.now()

	if err = s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.logger.Info("reservation updated",
		logger.Int64("booking_id", booking.ID),
		logger.String("room_type", string(booking.RoomType)),
		logger.String("total_price", booking.TotalPrice.String()),
	)

	go s.notifier.NotifyBookingUpdated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// validateStay is the ordered gate sequence shared by create and edit.
func (s *ReservationService) validateStay(ctx context.Context, in domain.ReservationInput) (*pricedStay, error) {
	if strings.TrimSpace(in.GuestName) == "" {
		return nil, fmt.Errorf("%w: guest name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.CheckinDate) == "" {
		return nil, fmt.Errorf("%w: check-in date is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.CheckoutDate) == "" {
		return nil, fmt.Errorf("%w: check-out date is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.RoomType) == "" {
		return nil, fmt.Errorf("%w: room type is required", domain.ErrValidation)
	}
	if s.rules.RequirePhone && strings.TrimSpace(in.Phone) == "" {
		return nil, fmt.Errorf("%w: phone number is required", domain.ErrValidation)
	}
	if s.rules.RequireEmail && strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if email := strings.TrimSpace(in.Email); email != "" {
		if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
			return nil, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
		}
	}

	checkin, err := parseDate(in.CheckinDate)
	if err != nil {
		return nil, err
	}
	checkout, err := parseDate(in.CheckoutDate)
	if err != nil {
		return nil, err
	}

	today := dateOnly(s.now())
	if checkin.Before(today) {
		return nil, fmt.Errorf("%w: check-in date cannot be in the past", domain.ErrValidation)
	}
	if checkout.Before(checkin) {
		return nil, fmt.Errorf("%w: check-out date cannot be before check-in date", domain.ErrValidation)
	}

	nights := daysBetween(checkin, checkout)
	if s.rules.MaxStayNights > 0 && nights > s.rules.MaxStayNights {
		return nil, fmt.Errorf("%w: maximum stay is %d nights", domain.ErrValidation, s.rules.MaxStayNights)
	}
	// Same-day bookings bill for one night.
	if nights == 0 {
		nights = 1
	}

	adults, err := parseCount(in.Adults, 1)
	if err != nil {
		return nil, fmt.Errorf("%w: adults must be a number", domain.ErrValidation)
	}
	if adults < 1 {
		return nil, fmt.Errorf("%w: at least one adult is required", domain.ErrValidation)
	}
	children, err := parseCount(in.Children, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: children must be a number", domain.ErrValidation)
	}
	if children < 0 {
		return nil, fmt.Errorf("%w: number of children cannot be negative", domain.ErrValidation)
	}

	// Booking-time pricing must see the latest configured rates.
	rates := s.rates.Rates(ctx, true)

	roomType, ok := resolveRoomType(in.RoomType, rates)
	if !ok {
		return nil, fmt.Errorf("%w: invalid room type selected", domain.ErrValidation)
	}

	rate, ok := rates[roomType]
	if !ok || !rate.IsPositive() {
		return nil, fmt.Errorf("%w: %s", domain.ErrRateNotConfigured, roomType)
	}

	return &pricedStay{
		checkin:    checkin,
		checkout:   checkout,
		adults:     adults,
		children:   children,
		roomType:   roomType,
		rate:       rate,
		totalDays:  nights,
		totalPrice: rate.Mul(decimal.NewFromInt(int64(nights))).Round(2),
	}, nil
}

// resolveRoomType checks the live rate table for a direct case-insensitive
// match before falling back to the historical alias table.
func resolveRoomType(raw string, rates map[domain.RoomType]decimal.Decimal) (domain.RoomType, bool) {
	norm := domain.NormalizeRoomType(raw)
	if _, ok := rates[domain.RoomType(norm)]; ok {
		return domain.RoomType(norm), true
	}
	return domain.ParseRoomType(raw)
}

func parseCount(raw string, fallback int) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

func (s *ReservationService) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *ReservationService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *ReservationService) ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *ReservationService) ListUpcoming(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.ListUpcoming(ctx, dateOnly(s.now()))
}

// Delete removes a booking and notifies staff with its last known state.
func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if err = s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("reservation deleted",
		logger.Int64("booking_id", id),
		logger.String("guest", booking.GuestName),
	)

	go s.notifier.NotifyBookingDeleted(context.WithoutCancel(ctx), booking)

	return nil
}

// Confirm moves a pending booking to confirmed.
func (s *ReservationService) Confirm(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking is not pending", domain.ErrValidation)
	}

	booking.Status = domain.BookingStatusConfirmed
	booking.UpdatedAt = s.now()

	if err = s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	s.logger.Info("reservation confirmed", logger.Int64("booking_id", id))

	return booking, nil
}

// RecordPayment adds a payment on top of what has already been paid and
// derives the payment status from the running total.
func (s *ReservationService) RecordPayment(ctx context.Context, id int64, amount string) (*domain.Booking, error) {
	paid, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, fmt.Errorf("%w: payment amount must be a number", domain.ErrValidation)
	}
	if !paid.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	booking.AmountPaid = booking.AmountPaid.Add(paid).Round(2)
	switch {
	case booking.AmountPaid.GreaterThanOrEqual(booking.TotalPrice):
		booking.PaymentStatus = domain.PaymentStatusPaid
	case booking.AmountPaid.IsPositive():
		booking.PaymentStatus = domain.PaymentStatusPartial
	default:
		booking.PaymentStatus = domain.PaymentStatusUnpaid
	}
	booking.UpdatedAt = s.now()

	if err = s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	s.logger.Info("payment recorded",
		logger.Int64("booking_id", id),
		logger.String("amount", paid.String()),
		logger.String("payment_status", string(booking.PaymentStatus)),
	)

	return booking, nil
}

// GetRoomRates exposes the cached rate table; force bypasses the TTL.
func (s *ReservationService) GetRoomRates(ctx context.Context, force bool) map[domain.RoomType]decimal.Decimal {
	return s.rates.Rates(ctx, force)
}

func (s *ReservationService) Stats(ctx context.Context) (*domain.BookingStats, error) {
	return s.bookingRepo.Stats(ctx, dateOnly(s.now()))
}

// CompletePastCheckouts marks confirmed stays whose checkout day has
// passed as completed. Called by the scheduler.
func (s *ReservationService) CompletePastCheckouts(ctx context.Context) ([]*domain.Booking, error) {
	completed, err := s.bookingRepo.CompletePastCheckouts(ctx, dateOnly(s.now()))
	if err != nil {
		return nil, fmt.Errorf("complete past checkouts: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("stays completed", logger.Int("count", len(completed)))
	}

	return completed, nil
}
