package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ListingService struct {
	repo       ports.ListingRepo
	reviewRepo ports.ReviewRepo
	cache      ports.ListingCache
	logger     logger.Logger
	now        func() time.Time
}

func NewListingService(
	repo ports.ListingRepo,
	reviewRepo ports.ReviewRepo,
	cache ports.ListingCache,
	logger logger.Logger,
) *ListingService {
	return &ListingService{
		repo:       repo,
		reviewRepo: reviewRepo,
		cache:      cache,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *ListingService) Create(ctx context.Context, actor domain.Actor, input domain.CreateListingInput) (*domain.Listing, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	ownerID := actor.UserID
	if actor.IsStaff && input.OwnerID != "" {
		ownerID = input.OwnerID
	}

	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}

	now := s.now().UTC()
	listing := &domain.Listing{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Title:         input.Title,
		Description:   input.Description,
		Address:       input.Address,
		City:          input.City,
		Country:       input.Country,
		PricePerNight: input.PricePerNight,
		Bedrooms:      input.Bedrooms,
		Bathrooms:     input.Bathrooms,
		MaxGuests:     input.MaxGuests,
		PropertyType:  input.PropertyType,
		Amenities:     input.Amenities,
		IsAvailable:   isAvailable,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := listing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	s.logger.Info("listing created",
		logger.String("listing_id", listing.ID),
		logger.String("owner_id", listing.OwnerID),
	)

	return listing, nil
}

// GetDetails returns the listing with its public reviews, served from cache
// when possible.
func (s *ListingService) GetDetails(ctx context.Context, id string) (*domain.ListingDetails, error) {
	if details, ok := s.cache.Get(ctx, id); ok {
		return details, nil
	}

	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	reviews, err := s.reviewRepo.ListByListing(ctx, id, true)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	details := &domain.ListingDetails{
		Listing: *listing,
		Reviews: make([]domain.Review, len(reviews)),
	}
	for i, r := range reviews {
		details.Reviews[i] = *r
	}

	s.cache.Set(ctx, id, details)

	return details, nil
}

func (s *ListingService) List(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error) {
	return s.repo.List(ctx, filter)
}

func (s *ListingService) Update(ctx context.Context, actor domain.Actor, id string, input domain.UpdateListingInput) (*domain.Listing, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	if !listing.CanManage(actor) {
		return nil, domain.ErrForbidden
	}

	if err = input.Apply(listing); err != nil {
		return nil, err
	}
	listing.UpdatedAt = s.now().UTC()

	if err = s.repo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}
	s.cache.Invalidate(ctx, id)

	s.logger.Info("listing updated",
		logger.String("listing_id", id),
		logger.String("actor_id", actor.UserID),
	)

	return listing, nil
}

func (s *ListingService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get listing: %w", err)
	}

	if !listing.CanManage(actor) {
		return domain.ErrForbidden
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	s.cache.Invalidate(ctx, id)

	s.logger.Info("listing deleted",
		logger.String("listing_id", id),
		logger.String("actor_id", actor.UserID),
	)

	return nil
}
