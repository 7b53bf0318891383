package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReviewService struct {
	reviewRepo  ports.ReviewRepo
	bookingRepo ports.BookingRepo
	listingRepo ports.ListingRepo
	cache       ports.ListingCache
	publisher   ports.EventPublisher
	logger      logger.Logger
	now         func() time.Time
}

func NewReviewService(
	reviewRepo ports.ReviewRepo,
	bookingRepo ports.BookingRepo,
	listingRepo ports.ListingRepo,
	cache ports.ListingCache,
	publisher ports.EventPublisher,
	logger logger.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		cache:       cache,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// CanReview returns nil when userID may review the listing, otherwise the
// reason they may not.
func (s *ReviewService) CanReview(ctx context.Context, listingID, userID string) error {
	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		return fmt.Errorf("get listing: %w", err)
	}

	_, err := s.reviewRepo.GetByListingAndUser(ctx, listingID, userID)
	if err != nil && !errors.Is(err, domain.ErrReviewNotFound) {
		return fmt.Errorf("get review: %w", err)
	}
	alreadyReviewed := err == nil

	bookings, err := s.bookingRepo.ListByListingAndGuest(ctx, listingID, userID)
	if err != nil {
		return fmt.Errorf("list bookings: %w", err)
	}

	return domain.CheckReviewEligibility(alreadyReviewed, bookings, domain.Today(s.now()))
}

func (s *ReviewService) Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error) {
	now := s.now().UTC()
	if err := input.Validate(domain.Today(now)); err != nil {
		return nil, err
	}

	if err := s.CanReview(ctx, input.ListingID, input.UserID); err != nil {
		return nil, err
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	var stayDate *time.Time
	if input.StayDate != nil {
		d := domain.DateOf(*input.StayDate)
		stayDate = &d
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		ListingID: input.ListingID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Title:     input.Title,
		Comment:   input.Comment,
		StayDate:  stayDate,
		IsPublic:  isPublic,
		CreatedAt: now,
		UpdatedAt: now,
	}

	summary, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.Info("review created",
		logger.String("review_id", review.ID),
		logger.String("listing_id", review.ListingID),
		logger.Int("rating", review.Rating),
	)
	s.ratingChanged(ctx, review.ListingID, summary)
	s.publish(ctx, domain.NewReviewEvent(domain.EventReviewCreated, review, now))

	return review, nil
}

// Update lets the author edit the rating, title or comment.
func (s *ReviewService) Update(ctx context.Context, actor domain.Actor, reviewID string, input domain.UpdateReviewInput) (*domain.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	if actor.UserID != review.UserID {
		return nil, domain.ErrForbidden
	}

	if err = input.Apply(review); err != nil {
		return nil, err
	}
	review.UpdatedAt = s.now().UTC()

	summary, err := s.reviewRepo.Update(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	s.ratingChanged(ctx, review.ListingID, summary)

	return review, nil
}

func (s *ReviewService) SetVisibility(ctx context.Context, actor domain.Actor, reviewID string, isPublic bool) (*domain.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	listing, err := s.listingRepo.GetByID(ctx, review.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if !review.CanModerate(actor, listing.OwnerID) {
		return nil, domain.ErrForbidden
	}

	if review.IsPublic == isPublic {
		return review, nil
	}
	review.IsPublic = isPublic
	review.UpdatedAt = s.now().UTC()

	summary, err := s.reviewRepo.Update(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("update review visibility: %w", err)
	}
	s.ratingChanged(ctx, review.ListingID, summary)

	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, actor domain.Actor, reviewID string) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("get review: %w", err)
	}

	if !review.CanDelete(actor) {
		return domain.ErrForbidden
	}

	summary, err := s.reviewRepo.Delete(ctx, review)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.logger.Info("review deleted",
		logger.String("review_id", review.ID),
		logger.String("listing_id", review.ListingID),
	)
	s.ratingChanged(ctx, review.ListingID, summary)
	s.publish(ctx, domain.NewReviewEvent(domain.EventReviewDeleted, review, s.now().UTC()))

	return nil
}

// Respond stores the listing owner's reply to a review.
func (s *ReviewService) Respond(ctx context.Context, actor domain.Actor, reviewID, text string) (*domain.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	listing, err := s.listingRepo.GetByID(ctx, review.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if actor.UserID == "" || actor.UserID != listing.OwnerID {
		return nil, domain.ErrForbidden
	}

	if err = domain.ValidateOwnerResponse(text); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	review.OwnerResponse = text
	review.ResponseDate = &now
	review.UpdatedAt = now

	if err = s.reviewRepo.SetResponse(ctx, review); err != nil {
		return nil, fmt.Errorf("respond to review: %w", err)
	}
	s.cache.Invalidate(ctx, review.ListingID)

	return review, nil
}

// ListForListing returns public reviews, plus hidden ones when the actor
// owns the listing or is staff.
func (s *ReviewService) ListForListing(ctx context.Context, actor domain.Actor, listingID string) ([]*domain.Review, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	return s.reviewRepo.ListByListing(ctx, listingID, !listing.CanManage(actor))
}

func (s *ReviewService) ratingChanged(ctx context.Context, listingID string, summary domain.RatingSummary) {
	s.cache.Invalidate(ctx, listingID)
	s.logger.Info("listing rating recomputed",
		logger.String("listing_id", listingID),
		logger.String("average_rating", summary.Average.StringFixed(2)),
		logger.Int("review_count", summary.Count),
	)
}

func (s *ReviewService) publish(ctx context.Context, event domain.Event) {
	go s.publisher.Publish(context.WithoutCancel(ctx), event)
}
