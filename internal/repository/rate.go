package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RateRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRateRepo(db *dbpg.DB) *RateRepository {
	return &RateRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RateRepository) List(ctx context.Context) ([]*domain.RoomRate, error) {
	query := `SELECT room_price_id, hotel_id, room_type, price_per_night, room_description
			  FROM room_price
			  ORDER BY price_per_night`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list room rates: %w", err)
	}
	defer rows.Close()

	var res []*domain.RoomRate
	for rows.Next() {
		var rate domain.RoomRate
		if err = rows.Scan(
			&rate.ID, &rate.HotelID, &rate.RoomType,
			&rate.PricePerNight, &rate.Description,
		); err != nil {
			return nil, fmt.Errorf("scan room rate: %w", err)
		}
		res = append(res, &rate)
	}

	return res, rows.Err()
}

func (r *RateRepository) Upsert(ctx context.Context, rate *domain.RoomRate) error {
	query := `INSERT INTO room_price (hotel_id, room_type, price_per_night, room_description)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (hotel_id, room_type)
			  DO UPDATE SET price_per_night = EXCLUDED.price_per_night,
							room_description = EXCLUDED.room_description
			  RETURNING room_price_id`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		rate.HotelID, rate.RoomType, rate.PricePerNight, rate.Description,
	)
	if err != nil {
		return fmt.Errorf("upsert room rate: %w", err)
	}

	if err = row.Scan(&rate.ID); err != nil {
		return fmt.Errorf("scan room rate id: %w", err)
	}

	return nil
}
