package cache

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newLocalCache(t *testing.T, opts Options) *ListingCache {
	t.Helper()
	c := NewListingCache(nil, opts, newTestLogger(t))
	t.Cleanup(c.Stop)
	return c
}

func TestListingCache_SetGet(t *testing.T) {
	c := newLocalCache(t, Options{})
	ctx := context.Background()

	details := &domain.ListingDetails{
		Listing: domain.Listing{ID: "l1", Title: "Cabin", PricePerNight: decimal.RequireFromString("100.00")},
	}
	c.Set(ctx, "l1", details)

	got, ok := c.Get(ctx, "l1")
	require.True(t, ok)
	assert.Equal(t, "Cabin", got.Listing.Title)
}

func TestListingCache_Miss(t *testing.T) {
	c := newLocalCache(t, Options{})

	_, ok := c.Get(context.Background(), "missing")

	assert.False(t, ok)
}

func TestListingCache_Invalidate(t *testing.T) {
	c := newLocalCache(t, Options{})
	ctx := context.Background()

	c.Set(ctx, "l1", &domain.ListingDetails{Listing: domain.Listing{ID: "l1"}})
	c.Invalidate(ctx, "l1")

	_, ok := c.Get(ctx, "l1")
	assert.False(t, ok)
}

func TestListingCache_Expired(t *testing.T) {
	c := newLocalCache(t, Options{TTL: time.Millisecond})
	ctx := context.Background()

	c.Set(ctx, "l1", &domain.ListingDetails{Listing: domain.Listing{ID: "l1"}})

	assert.Eventually(t, func() bool {
		_, ok := c.Get(ctx, "l1")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestNewListingCache_Defaults(t *testing.T) {
	c := newLocalCache(t, Options{TTL: time.Minute, LocalTTL: time.Hour})

	assert.Equal(t, time.Minute, c.ttl)
	assert.Equal(t, time.Minute, c.localTTL)
}
