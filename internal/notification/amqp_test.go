package notification

import (
	"context"
	"testing"
	"time"

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

func TestNewAMQPPublisher_EmptyURLDisables(t *testing.T) {
	p, err := NewAMQPPublisher("", "staybooker.events", newTestLogger(t))

	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Close())
}

func TestAMQPPublisher_Disabled_PublishIsNoop(t *testing.T) {
	p, err := NewAMQPPublisher("", "staybooker.events", newTestLogger(t))
	require.NoError(t, err)

	b := &domain.Booking{ID: "b1", ListingID: "l1", GuestID: "u1", Status: domain.BookingStatusPending}

	assert.NotPanics(t, func() {
		p.Publish(context.Background(), domain.NewBookingEvent(domain.EventBookingCreated, b, time.Now()))
	})
}

func TestNewAMQPPublisher_BadURL(t *testing.T) {
	_, err := NewAMQPPublisher("not-a-url", "staybooker.events", newTestLogger(t))

	assert.Error(t, err)
}
