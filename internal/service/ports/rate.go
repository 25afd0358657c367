package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type RateRepo interface {
	List(ctx context.Context) ([]*domain.RoomRate, error)
	Upsert(ctx context.Context, rate *domain.RoomRate) error
}
