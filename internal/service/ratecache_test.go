package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func rateRows(price int64) []*domain.RoomRate {
	return []*domain.RoomRate{
		{RoomType: domain.RoomOneBedBalcony, PricePerNight: decimal.NewFromInt(price)},
	}
}

func TestRateCache_ServesCachedWithinTTL(t *testing.T) {
	store := mocks.NewMockRateRepo(t)
	cache := NewRateCache(store, 300*time.Second, newTestLogger(t))

	current := time.Now()
	cache.now = func() time.Time { return current }

	store.EXPECT().List(mock.Anything).Return(rateRows(1500000), nil).Once()

	first := cache.Rates(context.Background(), false)
	require.Len(t, first, 1)

	// Just inside the TTL the store must not be hit again.
	current = current.Add(299 * time.Second)
	second := cache.Rates(context.Background(), false)
	assert.True(t, second[domain.RoomOneBedBalcony].Equal(first[domain.RoomOneBedBalcony]))
}

func TestRateCache_RefreshesAfterTTL(t *testing.T) {
	store := mocks.NewMockRateRepo(t)
	cache := NewRateCache(store, 300*time.Second, newTestLogger(t))

	current := time.Now()
	cache.now = func() time.Time { return current }

	store.EXPECT().List(mock.Anything).Return(rateRows(1500000), nil).Once()
	store.EXPECT().List(mock.Anything).Return(rateRows(1800000), nil).Once()

	cache.Rates(context.Background(), false)

	current = current.Add(301 * time.Second)
	updated := cache.Rates(context.Background(), false)
	assert.True(t, updated[domain.RoomOneBedBalcony].Equal(decimal.NewFromInt(1800000)))
}

func TestRateCache_ForceBypassesTTL(t *testing.T) {
	store := mocks.NewMockRateRepo(t)
	cache := NewRateCache(store, 300*time.Second, newTestLogger(t))

	store.EXPECT().List(mock.Anything).Return(rateRows(1500000), nil).Once()
	store.EXPECT().List(mock.Anything).Return(rateRows(1600000), nil).Once()

	cache.Rates(context.Background(), false)
	updated := cache.Rates(context.Background(), true)

	assert.True(t, updated[domain.RoomOneBedBalcony].Equal(decimal.NewFromInt(1600000)))
}

func TestRateCache_ServesLastKnownOnRefreshFailure(t *testing.T) {
	store := mocks.NewMockRateRepo(t)
	cache := NewRateCache(store, 300*time.Second, newTestLogger(t))

	store.EXPECT().List(mock.Anything).Return(rateRows(1500000), nil).Once()
	store.EXPECT().List(mock.Anything).Return(nil, errors.New("db down")).Once()

	cache.Rates(context.Background(), true)
	rates := cache.Rates(context.Background(), true)

	require.Len(t, rates, 1)
	assert.True(t, rates[domain.RoomOneBedBalcony].Equal(decimal.NewFromInt(1500000)))
}

func TestRateCache_EmptyWhenNothingEverLoaded(t *testing.T) {
	store := mocks.NewMockRateRepo(t)
	cache := NewRateCache(store, 300*time.Second, newTestLogger(t))

	store.EXPECT().List(mock.Anything).Return(nil, errors.New("db down")).Once()

	rates := cache.Rates(context.Background(), false)
	assert.Empty(t, rates)
}

func TestRateCache_EmptyLoadStillCountsAsFresh(t *testing.T) {
	store := mocks.NewMockRateRepo(t)
	cache := NewRateCache(store, 300*time.Second, newTestLogger(t))

	current := time.Now()
	cache.now = func() time.Time { return current }

	store.EXPECT().List(mock.Anything).Return([]*domain.RoomRate{}, nil).Once()

	rates := cache.Rates(context.Background(), false)
	assert.Empty(t, rates)

	// The empty table is cached; no second store hit inside the TTL.
	current = current.Add(100 * time.Second)
	rates = cache.Rates(context.Background(), false)
	assert.Empty(t, rates)
}

func TestRateCache_ReturnedMapIsACopy(t *testing.T) {
	store := mocks.NewMockRateRepo(t)
	cache := NewRateCache(store, 300*time.Second, newTestLogger(t))

	store.EXPECT().List(mock.Anything).Return(rateRows(1500000), nil).Once()

	first := cache.Rates(context.Background(), false)
	first[domain.RoomOneBedBalcony] = decimal.NewFromInt(1)
	delete(first, domain.RoomOneBedBalcony)

	second := cache.Rates(context.Background(), false)
	assert.True(t, second[domain.RoomOneBedBalcony].Equal(decimal.NewFromInt(1500000)))
}
