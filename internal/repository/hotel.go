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

type HotelRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHotelRepo(db *dbpg.DB) *HotelRepository {
	return &HotelRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *HotelRepository) GetPrimary(ctx context.Context) (*domain.Hotel, error) {
	query := `SELECT hotel_id, hotel_name, hotel_address, star_rating,
					 established_date, phone, email
			  FROM hotel_info
			  ORDER BY hotel_id
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("get hotel: %w", err)
	}

	var h domain.Hotel
	if err = row.Scan(
		&h.ID, &h.Name, &h.Address, &h.StarRating,
		&h.EstablishedDate, &h.Phone, &h.Email,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHotelNotConfigured
		}
		return nil, fmt.Errorf("scan hotel: %w", err)
	}

	return &h, nil
}
