package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var testNow = time.Date(2025, time.January, 5, 12, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func fixedClock() time.Time { return testNow }

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func testListing(id, ownerID string) *domain.Listing {
	return &domain.Listing{
		ID:            id,
		OwnerID:       ownerID,
		Title:         "Cabin in the woods",
		City:          "Bergen",
		Country:       "Norway",
		PricePerNight: decimal.RequireFromString("100"),
		Bedrooms:      2,
		Bathrooms:     decimal.RequireFromString("1"),
		MaxGuests:     4,
		PropertyType:  domain.PropertyCabin,
		IsAvailable:   true,
	}
}

// captureEvents registers an expectation for n asynchronous publishes and
// returns a function that waits for them.
func captureEvents(t *testing.T, pub *mocks.MockEventPublisher, n int) func() []domain.Event {
	t.Helper()
	ch := make(chan domain.Event, n)
	pub.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e domain.Event) { ch <- e }).
		Return().
		Times(n)

	return func() []domain.Event {
		t.Helper()
		events := make([]domain.Event, 0, n)
		for range n {
			select {
			case e := <-ch:
				events = append(events, e)
			case <-time.After(time.Second):
				t.Fatalf("timed out waiting for event %d of %d", len(events)+1, n)
			}
		}
		return events
	}
}
