package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

// ReviewRepo writes reviews and recomputes the listing rating aggregate in
// the same transaction, returning the new aggregate.
type ReviewRepo interface {
	Create(ctx context.Context, r *domain.Review) (domain.RatingSummary, error)
	Update(ctx context.Context, r *domain.Review) (domain.RatingSummary, error)
	Delete(ctx context.Context, r *domain.Review) (domain.RatingSummary, error)
	SetResponse(ctx context.Context, r *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	GetByListingAndUser(ctx context.Context, listingID, userID string) (*domain.Review, error)
	ListByListing(ctx context.Context, listingID string, onlyPublic bool) ([]*domain.Review, error)
}
