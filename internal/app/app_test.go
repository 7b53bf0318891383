package app

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/StayBooker/internal/cache"
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

func TestApp_Close_PartiallyBuilt(t *testing.T) {
	log := newTestLogger(t)
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})

	a := &App{
		log:          log,
		rdb:          rdb,
		listingCache: cache.NewListingCache(nil, cache.Options{TTL: time.Minute, LocalTTL: time.Minute, LocalSize: 10}, log),
	}

	require.NoError(t, a.Close())
	assert.ErrorIs(t, rdb.Ping(context.Background()).Err(), redis.ErrClosed)
}

func TestApp_Close_NothingOpened(t *testing.T) {
	a := &App{log: newTestLogger(t)}

	assert.NoError(t, a.Close())
}
