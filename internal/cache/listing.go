package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/karlseguin/ccache/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const keyPrefix = "listing:details:"

// ListingCache keeps listing details in a process-local LRU in front of redis.
// A nil redis client leaves only the local level.
type ListingCache struct {
	local    *ccache.Cache[*domain.ListingDetails]
	rdb      *redis.Client
	ttl      time.Duration
	localTTL time.Duration
	logger   logger.Logger
}

type Options struct {
	TTL       time.Duration
	LocalTTL  time.Duration
	LocalSize int64
}

func NewListingCache(rdb *redis.Client, opts Options, logger logger.Logger) *ListingCache {
	if opts.LocalSize <= 0 {
		opts.LocalSize = 1000
	}
	if opts.TTL <= 0 {
		opts.TTL = 10 * time.Minute
	}
	if opts.LocalTTL <= 0 || opts.LocalTTL > opts.TTL {
		opts.LocalTTL = opts.TTL
	}

	return &ListingCache{
		local:    ccache.New(ccache.Configure[*domain.ListingDetails]().MaxSize(opts.LocalSize)),
		rdb:      rdb,
		ttl:      opts.TTL,
		localTTL: opts.LocalTTL,
		logger:   logger,
	}
}

func (c *ListingCache) Get(ctx context.Context, id string) (*domain.ListingDetails, bool) {
	key := keyPrefix + id

	if item := c.local.Get(key); item != nil && !item.Expired() {
		return item.Value(), true
	}

	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("listing cache get failed",
				logger.String("listing_id", id),
				logger.String("error", err.Error()),
			)
		}
		return nil, false
	}

	var details domain.ListingDetails
	if err = json.Unmarshal(raw, &details); err != nil {
		c.logger.Warn("listing cache entry corrupted",
			logger.String("listing_id", id),
			logger.String("error", err.Error()),
		)
		return nil, false
	}

	c.local.Set(key, &details, c.localTTL)
	return &details, true
}

func (c *ListingCache) Set(ctx context.Context, id string, details *domain.ListingDetails) {
	key := keyPrefix + id
	c.local.Set(key, details, c.localTTL)

	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(details)
	if err != nil {
		c.logger.Warn("listing cache marshal failed",
			logger.String("listing_id", id),
			logger.String("error", err.Error()),
		)
		return
	}

	if err = c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("listing cache set failed",
			logger.String("listing_id", id),
			logger.String("error", err.Error()),
		)
	}
}

func (c *ListingCache) Invalidate(ctx context.Context, id string) {
	key := keyPrefix + id
	c.local.Delete(key)

	if c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("listing cache invalidate failed",
			logger.String("listing_id", id),
			logger.String("error", err.Error()),
		)
	}
}

func (c *ListingCache) Stop() {
	c.local.Stop()
}
