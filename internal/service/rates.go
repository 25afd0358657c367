package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// RateService is the admin-facing side of rate management; reads go
// through the same cache the pricing pipeline uses.
type RateService struct {
	repo      ports.RateRepo
	hotelRepo ports.HotelRepo
	cache     *RateCache
	logger    logger.Logger
}

func NewRateService(repo ports.RateRepo, hotelRepo ports.HotelRepo, cache *RateCache, logger logger.Logger) *RateService {
	return &RateService{
		repo:      repo,
		hotelRepo: hotelRepo,
		cache:     cache,
		logger:    logger,
	}
}

func (s *RateService) Rates(ctx context.Context, force bool) map[domain.RoomType]decimal.Decimal {
	return s.cache.Rates(ctx, force)
}

// Upsert writes a nightly rate for a canonical room type and refreshes the
// cache so reads see the change without waiting out the TTL.
func (s *RateService) Upsert(ctx context.Context, roomType, price, description string) (*domain.RoomRate, error) {
	rt, ok := domain.ParseRoomType(roomType)
	if !ok {
		return nil, fmt.Errorf("%w: invalid room type selected", domain.ErrValidation)
	}

	nightly, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return nil, fmt.Errorf("%w: price must be a number", domain.ErrValidation)
	}
	if !nightly.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}

	hotel, err := s.hotelRepo.GetPrimary(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve hotel: %w", err)
	}

	rate := &domain.RoomRate{
		HotelID:       hotel.ID,
		RoomType:      rt,
		PricePerNight: nightly.Round(2),
		Description:   strings.TrimSpace(description),
	}

	if err = s.repo.Upsert(ctx, rate); err != nil {
		return nil, fmt.Errorf("upsert rate: %w", err)
	}

	s.logger.Info("room rate updated",
		logger.String("room_type", string(rt)),
		logger.String("price_per_night", rate.PricePerNight.String()),
	)

	s.cache.Rates(ctx, true)

	return rate, nil
}
