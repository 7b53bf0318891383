package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Tick_RunsBothSweeps(t *testing.T) {
	sweeper := mocks.NewMockBookingSweeper(t)
	s := New(sweeper, time.Minute, newTestLogger(t))

	sweeper.EXPECT().CompleteFinished(mock.Anything).
		Return([]*domain.Booking{{ID: "b1", ListingID: "l1", GuestID: "u1"}}, nil).Once()
	sweeper.EXPECT().CancelStalePending(mock.Anything).
		Return([]*domain.Booking{{ID: "b2", ListingID: "l1", GuestID: "u2"}}, nil).Once()

	s.tick(context.Background())
}

func TestScheduler_Tick_CompletionErrorStillCancels(t *testing.T) {
	sweeper := mocks.NewMockBookingSweeper(t)
	s := New(sweeper, time.Minute, newTestLogger(t))

	sweeper.EXPECT().CompleteFinished(mock.Anything).Return(nil, errors.New("db error")).Once()
	sweeper.EXPECT().CancelStalePending(mock.Anything).Return(nil, nil).Once()

	s.tick(context.Background())
}

func TestScheduler_Tick_HandlesCancelError(t *testing.T) {
	sweeper := mocks.NewMockBookingSweeper(t)
	s := New(sweeper, time.Minute, newTestLogger(t))

	sweeper.EXPECT().CompleteFinished(mock.Anything).Return(nil, nil).Once()
	sweeper.EXPECT().CancelStalePending(mock.Anything).Return(nil, errors.New("db error")).Once()

	s.tick(context.Background())
}

func TestScheduler_Tick_SkipsWhenCancelled(t *testing.T) {
	sweeper := mocks.NewMockBookingSweeper(t)
	s := New(sweeper, time.Minute, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.tick(ctx)
}

func TestScheduler_StartTicks(t *testing.T) {
	sweeper := mocks.NewMockBookingSweeper(t)
	s := New(sweeper, 10*time.Millisecond, newTestLogger(t))

	// the initial sweep plus at least one ticker-driven one
	ticked := make(chan struct{}, 2)
	sweeper.EXPECT().CompleteFinished(mock.Anything).Return(nil, nil)
	sweeper.EXPECT().CancelStalePending(mock.Anything).
		Run(func(ctx context.Context) {
			select {
			case ticked <- struct{}{}:
			default:
			}
		}).
		Return(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	for range 2 {
		select {
		case <-ticked:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not tick")
		}
	}

	cancel()
	<-done
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sweeper := mocks.NewMockBookingSweeper(t)
	s := New(sweeper, time.Hour, newTestLogger(t))

	sweeper.EXPECT().CompleteFinished(mock.Anything).Return(nil, nil).Maybe()
	sweeper.EXPECT().CancelStalePending(mock.Anything).Return(nil, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
