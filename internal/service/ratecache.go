package service

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// RateCache keeps the nightly rate table in memory and refreshes it from
// the store once its TTL runs out, or immediately when a caller forces it.
// A failed refresh keeps serving the last known mapping; an empty table
// that loaded successfully still counts as fresh and is the caller's
// signal of a misconfigured deployment.
type RateCache struct {
	store ports.RateRepo
	ttl   time.Duration
	now   func() time.Time
	log   logger.Logger

	mu        sync.RWMutex
	rates     map[domain.RoomType]decimal.Decimal
	fetchedAt time.Time
}

func NewRateCache(store ports.RateRepo, ttl time.Duration, log logger.Logger) *RateCache {
	return &RateCache{
		store: store,
		ttl:   ttl,
		now:   time.Now,
		log:   log,
	}
}

// Rates returns the room-type to nightly-rate mapping, no older than the
// TTL unless force skips the freshness check entirely. The returned map is
// a copy; callers may not mutate cache state.
func (c *RateCache) Rates(ctx context.Context, force bool) map[domain.RoomType]decimal.Decimal {
	c.mu.RLock()
	if !force && c.rates != nil && c.now().Sub(c.fetchedAt) <= c.ttl {
		snapshot := copyRates(c.rates)
		c.mu.RUnlock()
		return snapshot
	}
	c.mu.RUnlock()

	return c.refresh(ctx)
}

func (c *RateCache) refresh(ctx context.Context) map[domain.RoomType]decimal.Decimal {
	rows, err := c.store.List(ctx)
	if err != nil {
		c.log.Error("rate table refresh failed, serving last known rates",
			logger.String("error", err.Error()),
		)
		c.mu.RLock()
		defer c.mu.RUnlock()
		if c.rates == nil {
			return map[domain.RoomType]decimal.Decimal{}
		}
		return copyRates(c.rates)
	}

	fresh := make(map[domain.RoomType]decimal.Decimal, len(rows))
	for _, row := range rows {
		fresh[row.RoomType] = row.PricePerNight
	}

	c.mu.Lock()
	c.rates = fresh
	c.fetchedAt = c.now()
	c.mu.Unlock()

	if len(fresh) == 0 {
		c.log.Warn("rate table loaded empty")
	}

	return copyRates(fresh)
}

func copyRates(src map[domain.RoomType]decimal.Decimal) map[domain.RoomType]decimal.Decimal {
	dst := make(map[domain.RoomType]decimal.Decimal, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
