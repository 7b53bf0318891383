package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type ListingRepo interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error)
	Update(ctx context.Context, l *domain.Listing) error
	Delete(ctx context.Context, id string) error
}

type ListingCache interface {
	Get(ctx context.Context, id string) (*domain.ListingDetails, bool)
	Set(ctx context.Context, id string, details *domain.ListingDetails)
	Invalidate(ctx context.Context, id string)
}
