package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRateFixture(t *testing.T) (*mocks.MockRateRepo, *mocks.MockHotelRepo, *RateService) {
	t.Helper()
	log := newTestLogger(t)
	rateRepo := mocks.NewMockRateRepo(t)
	hotelRepo := mocks.NewMockHotelRepo(t)
	cache := NewRateCache(rateRepo, 300*time.Second, log)
	return rateRepo, hotelRepo, NewRateService(rateRepo, hotelRepo, cache, log)
}

func TestRateService_Upsert(t *testing.T) {
	rateRepo, hotelRepo, svc := newRateFixture(t)

	hotelRepo.EXPECT().GetPrimary(mock.Anything).Return(&domain.Hotel{ID: 1}, nil)
	rateRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	// Upsert forces a cache refresh so reads see the new price at once.
	rateRepo.EXPECT().List(mock.Anything).Return([]*domain.RoomRate{
		{RoomType: domain.RoomOneBedBalcony, PricePerNight: decimal.NewFromInt(1650000)},
	}, nil)

	rate, err := svc.Upsert(context.Background(), "1 bed balcony room", "1650000", "Renovated balcony room")

	require.NoError(t, err)
	assert.Equal(t, domain.RoomOneBedBalcony, rate.RoomType)
	assert.Equal(t, int64(1), rate.HotelID)
	assert.True(t, rate.PricePerNight.Equal(decimal.NewFromInt(1650000)))

	rates := svc.Rates(context.Background(), false)
	assert.True(t, rates[domain.RoomOneBedBalcony].Equal(decimal.NewFromInt(1650000)))
}

func TestRateService_Upsert_UnknownRoomType(t *testing.T) {
	_, _, svc := newRateFixture(t)

	_, err := svc.Upsert(context.Background(), "presidential suite", "1000000", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRateService_Upsert_InvalidPrice(t *testing.T) {
	_, _, svc := newRateFixture(t)

	for _, price := range []string{"", "abc", "0", "-100"} {
		_, err := svc.Upsert(context.Background(), "condotel", price, "")
		require.Error(t, err, "price %q", price)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestRateService_Upsert_NoHotelConfigured(t *testing.T) {
	_, hotelRepo, svc := newRateFixture(t)

	hotelRepo.EXPECT().GetPrimary(mock.Anything).Return(nil, domain.ErrHotelNotConfigured)

	_, err := svc.Upsert(context.Background(), "condotel", "2500000", "")

	assert.ErrorIs(t, err, domain.ErrHotelNotConfigured)
}
