package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `booking_id, hotel_id, guest_name, email, phone, room_type,
			booking_date, check_in, check_out, adults, children, total_days,
			booked_rate, total_price, status, payment_status, amount_paid,
			special_requests, notes, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO booking_info (hotel_id, guest_name, email, phone, room_type,
				booking_date, check_in, check_out, adults, children, total_days,
				booked_rate, total_price, status, payment_status, amount_paid,
				special_requests, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
				$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
			  RETURNING booking_id`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		b.HotelID, b.GuestName, b.Email, b.Phone, b.RoomType,
		b.BookingDate, b.CheckIn, b.CheckOut, b.Adults, b.Children, b.TotalDays,
		b.BookedRate, b.TotalPrice, b.Status, b.PaymentStatus, b.AmountPaid,
		b.SpecialRequests, b.Notes, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = row.Scan(&b.ID); err != nil {
		return fmt.Errorf("scan booking id: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM booking_info
			  WHERE booking_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM booking_info
			  ORDER BY booking_date DESC`

	return r.queryBookings(ctx, query)
}

func (r *BookingRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM booking_info
			  WHERE lower(email) = lower($1)
			  ORDER BY booking_date DESC`

	return r.queryBookings(ctx, query, email)
}

func (r *BookingRepository) ListUpcoming(ctx context.Context, from time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM booking_info
			  WHERE check_in >= $1 AND status IN ($2, $3)
			  ORDER BY check_in`

	return r.queryBookings(ctx, query, from,
		domain.BookingStatusPending, domain.BookingStatusConfirmed)
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE booking_info
			  SET guest_name = $2, email = $3, phone = $4, room_type = $5,
				  check_in = $6, check_out = $7, adults = $8, children = $9,
				  total_days = $10, booked_rate = $11, total_price = $12,
				  status = $13, payment_status = $14, amount_paid = $15,
				  special_requests = $16, notes = $17, updated_at = $18
			  WHERE booking_id = $1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.GuestName, b.Email, b.Phone, b.RoomType,
		b.CheckIn, b.CheckOut, b.Adults, b.Children,
		b.TotalDays, b.BookedRate, b.TotalPrice,
		b.Status, b.PaymentStatus, b.AmountPaid,
		b.SpecialRequests, b.Notes, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy,
		`DELETE FROM booking_info WHERE booking_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) CompletePastCheckouts(ctx context.Context, before time.Time) ([]*domain.Booking, error) {
	query := `UPDATE booking_info
			  SET status = $1, updated_at = now()
			  WHERE status = $2 AND check_out < $3
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusCompleted, domain.BookingStatusConfirmed, before,
	)
	if err != nil {
		return nil, fmt.Errorf("complete past checkouts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) Stats(ctx context.Context, today time.Time) (*domain.BookingStats, error) {
	query := `SELECT
				COUNT(*),
				COUNT(*) FILTER (WHERE status = $2),
				COUNT(*) FILTER (WHERE check_in = $1 AND status IN ($2, $3)),
				COUNT(*) FILTER (WHERE check_out = $1 AND status = $3),
				COUNT(*) FILTER (WHERE check_in <= $1 AND check_out > $1 AND status = $3),
				COALESCE(SUM(amount_paid), 0),
				COALESCE(SUM(total_price - amount_paid) FILTER (WHERE status IN ($2, $3)), 0)
			  FROM booking_info`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		today, domain.BookingStatusPending, domain.BookingStatusConfirmed,
	)
	if err != nil {
		return nil, fmt.Errorf("booking stats: %w", err)
	}

	var s domain.BookingStats
	if err = row.Scan(
		&s.TotalBookings, &s.PendingCount, &s.TodayCheckIns,
		&s.TodayCheckOuts, &s.ActiveStays, &s.TotalRevenue, &s.AmountUnpaid,
	); err != nil {
		return nil, fmt.Errorf("scan booking stats: %w", err)
	}

	return &s, nil
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	err := scan(
		&b.ID, &b.HotelID, &b.GuestName, &b.Email, &b.Phone, &b.RoomType,
		&b.BookingDate, &b.CheckIn, &b.CheckOut, &b.Adults, &b.Children, &b.TotalDays,
		&b.BookedRate, &b.TotalPrice, &b.Status, &b.PaymentStatus, &b.AmountPaid,
		&b.SpecialRequests, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
