package ports

import (
	"context"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type BookingRepo interface {
	// Create checks capacity and availability and inserts b in one transaction.
	Create(ctx context.Context, b *domain.Booking) error
	// Reschedule persists new dates for b, treating b itself as non-conflicting.
	Reschedule(ctx context.Context, b *domain.Booking) error
	// UpdateStatus persists b's status only if the stored status is still from.
	UpdateStatus(ctx context.Context, b *domain.Booking, from domain.BookingStatus) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByIdempotencyKey(ctx context.Context, guestID, key string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	ListActiveOverlapping(ctx context.Context, listingID string, r domain.DateRange) ([]*domain.Booking, error)
	ListByListingAndGuest(ctx context.Context, listingID, guestID string) ([]*domain.Booking, error)
	ListDueForCompletion(ctx context.Context, today time.Time) ([]*domain.Booking, error)
	ListExpiredPending(ctx context.Context, today time.Time) ([]*domain.Booking, error)
}

type IdempotencyStore interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string)
}
