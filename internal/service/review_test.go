package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewDeps struct {
	reviews  *mocks.MockReviewRepo
	bookings *mocks.MockBookingRepo
	listings *mocks.MockListingRepo
	cache    *mocks.MockListingCache
	pub      *mocks.MockEventPublisher
}

func newReviewService(t *testing.T) (*ReviewService, reviewDeps) {
	t.Helper()
	d := reviewDeps{
		reviews:  mocks.NewMockReviewRepo(t),
		bookings: mocks.NewMockBookingRepo(t),
		listings: mocks.NewMockListingRepo(t),
		cache:    mocks.NewMockListingCache(t),
		pub:      mocks.NewMockEventPublisher(t),
	}
	svc := NewReviewService(d.reviews, d.bookings, d.listings, d.cache, d.pub, newTestLogger(t))
	svc.now = fixedClock
	return svc, d
}

func completedStay(t *testing.T) *domain.Booking {
	return &domain.Booking{
		ID: "b1", ListingID: "l1", GuestID: "g", Status: domain.BookingStatusCompleted,
		CheckIn: date(t, "2024-12-20"), CheckOut: date(t, "2024-12-24"),
	}
}

func reviewInput(rating int) domain.CreateReviewInput {
	return domain.CreateReviewInput{
		ListingID: "l1",
		UserID:    "g",
		Rating:    rating,
		Title:     "Lovely",
		Comment:   "Would stay again",
	}
}

func (d reviewDeps) expectEligibility(bookings []*domain.Booking) {
	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing("l1", "owner"), nil)
	d.reviews.EXPECT().GetByListingAndUser(mock.Anything, "l1", "g").Return(nil, domain.ErrReviewNotFound)
	d.bookings.EXPECT().ListByListingAndGuest(mock.Anything, "l1", "g").Return(bookings, nil)
}

func TestReviewService_CanReview(t *testing.T) {
	tests := []struct {
		name     string
		bookings []*domain.Booking
		wantErr  error
	}{
		{name: "completed stay", bookings: []*domain.Booking{completedStay(t)}},
		{name: "no bookings", wantErr: domain.ErrReviewNotEligible},
		{
			name: "only confirmed",
			bookings: []*domain.Booking{{
				ID: "b2", Status: domain.BookingStatusConfirmed,
				CheckIn: date(t, "2024-12-20"), CheckOut: date(t, "2024-12-24"),
			}},
			wantErr: domain.ErrReviewNotEligible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newReviewService(t)
			d.expectEligibility(tt.bookings)

			err := svc.CanReview(context.Background(), "l1", "g")

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReviewService_CanReview_AlreadyReviewed(t *testing.T) {
	svc, d := newReviewService(t)

	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing("l1", "owner"), nil)
	d.reviews.EXPECT().GetByListingAndUser(mock.Anything, "l1", "g").Return(&domain.Review{ID: "r1"}, nil)
	d.bookings.EXPECT().ListByListingAndGuest(mock.Anything, "l1", "g").Return([]*domain.Booking{completedStay(t)}, nil)

	err := svc.CanReview(context.Background(), "l1", "g")

	assert.ErrorIs(t, err, domain.ErrDuplicateReview)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReviewService_Create_NotEligible(t *testing.T) {
	svc, d := newReviewService(t)
	d.expectEligibility(nil)

	_, err := svc.Create(context.Background(), reviewInput(5))

	assert.ErrorIs(t, err, domain.ErrReviewNotEligible)
}

func TestReviewService_Create_InvalidRating(t *testing.T) {
	svc, _ := newReviewService(t)

	_, err := svc.Create(context.Background(), reviewInput(6))

	assert.ErrorIs(t, err, domain.ErrInvalidRating)
}

func TestReviewService_Create_FutureStayDate(t *testing.T) {
	svc, _ := newReviewService(t)

	input := reviewInput(4)
	future := date(t, "2025-02-01")
	input.StayDate = &future

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrFutureStayDate)
}

func TestReviewService_Create_RecomputesRating(t *testing.T) {
	svc, d := newReviewService(t)
	events := captureEvents(t, d.pub, 1)
	d.expectEligibility([]*domain.Booking{completedStay(t)})

	d.reviews.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.Review) bool {
		return r.Rating == 3 && r.IsPublic
	})).Return(domain.RatingSummary{Average: decimal.RequireFromString("4.00"), Count: 3}, nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "l1").Return()

	r, err := svc.Create(context.Background(), reviewInput(3))

	require.NoError(t, err)
	assert.Equal(t, 3, r.Rating)
	got := events()[0]
	assert.Equal(t, domain.EventReviewCreated, got.Type)
	assert.Equal(t, 3, got.Rating)
}

func TestReviewService_Update(t *testing.T) {
	svc, d := newReviewService(t)

	d.reviews.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Review{ID: "r1", ListingID: "l1", UserID: "g", Rating: 3, Title: "Ok", Comment: "Fine"}, nil)
	d.reviews.EXPECT().Update(mock.Anything, mock.Anything).
		Return(domain.RatingSummary{Average: decimal.RequireFromString("4.50"), Count: 2}, nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "l1").Return()

	rating := 5
	r, err := svc.Update(context.Background(), domain.Actor{UserID: "g"}, "r1", domain.UpdateReviewInput{Rating: &rating})

	require.NoError(t, err)
	assert.Equal(t, 5, r.Rating)
}

func TestReviewService_Update_NotAuthor(t *testing.T) {
	svc, d := newReviewService(t)

	d.reviews.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Review{ID: "r1", ListingID: "l1", UserID: "g"}, nil)

	_, err := svc.Update(context.Background(), domain.Actor{UserID: "owner"}, "r1", domain.UpdateReviewInput{})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReviewService_SetVisibility(t *testing.T) {
	svc, d := newReviewService(t)

	d.reviews.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Review{ID: "r1", ListingID: "l1", UserID: "g", IsPublic: true}, nil)
	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing("l1", "owner"), nil)
	d.reviews.EXPECT().Update(mock.Anything, mock.MatchedBy(func(r *domain.Review) bool { return !r.IsPublic })).
		Return(domain.RatingSummary{Average: decimal.Zero}, nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "l1").Return()

	r, err := svc.SetVisibility(context.Background(), domain.Actor{UserID: "owner"}, "r1", false)

	require.NoError(t, err)
	assert.False(t, r.IsPublic)
}

func TestReviewService_SetVisibility_Unchanged(t *testing.T) {
	svc, d := newReviewService(t)

	d.reviews.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Review{ID: "r1", ListingID: "l1", UserID: "g", IsPublic: true}, nil)
	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing("l1", "owner"), nil)

	r, err := svc.SetVisibility(context.Background(), domain.Actor{UserID: "g"}, "r1", true)

	require.NoError(t, err)
	assert.True(t, r.IsPublic)
}

func TestReviewService_Delete(t *testing.T) {
	svc, d := newReviewService(t)
	events := captureEvents(t, d.pub, 1)

	review := &domain.Review{ID: "r1", ListingID: "l1", UserID: "g", Rating: 3}
	d.reviews.EXPECT().GetByID(mock.Anything, "r1").Return(review, nil)
	d.reviews.EXPECT().Delete(mock.Anything, review).
		Return(domain.RatingSummary{Average: decimal.RequireFromString("4.50"), Count: 2}, nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "l1").Return()

	err := svc.Delete(context.Background(), domain.Actor{UserID: "g"}, "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.EventReviewDeleted, events()[0].Type)
}

func TestReviewService_Delete_Forbidden(t *testing.T) {
	svc, d := newReviewService(t)

	d.reviews.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Review{ID: "r1", ListingID: "l1", UserID: "g"}, nil)

	err := svc.Delete(context.Background(), domain.Actor{UserID: "owner"}, "r1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReviewService_Respond(t *testing.T) {
	svc, d := newReviewService(t)

	d.reviews.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Review{ID: "r1", ListingID: "l1", UserID: "g"}, nil)
	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing("l1", "owner"), nil)
	d.reviews.EXPECT().SetResponse(mock.Anything, mock.Anything).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "l1").Return()

	r, err := svc.Respond(context.Background(), domain.Actor{UserID: "owner"}, "r1", "Thanks for staying!")

	require.NoError(t, err)
	assert.Equal(t, "Thanks for staying!", r.OwnerResponse)
	require.NotNil(t, r.ResponseDate)
	assert.Equal(t, testNow, *r.ResponseDate)
}

func TestReviewService_Respond_OnlyOwner(t *testing.T) {
	for _, a := range []domain.Actor{{UserID: "g"}, {UserID: "admin", IsStaff: true}, {}} {
		svc, d := newReviewService(t)
		d.reviews.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Review{ID: "r1", ListingID: "l1", UserID: "g"}, nil)
		d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing("l1", "owner"), nil)

		_, err := svc.Respond(context.Background(), a, "r1", "Thanks")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	}
}

func TestReviewService_ListForListing(t *testing.T) {
	tests := []struct {
		name       string
		actor      domain.Actor
		onlyPublic bool
	}{
		{name: "anonymous", actor: domain.Actor{}, onlyPublic: true},
		{name: "guest", actor: domain.Actor{UserID: "g"}, onlyPublic: true},
		{name: "owner", actor: domain.Actor{UserID: "owner"}, onlyPublic: false},
		{name: "staff", actor: domain.Actor{UserID: "admin", IsStaff: true}, onlyPublic: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newReviewService(t)
			d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing("l1", "owner"), nil)
			d.reviews.EXPECT().ListByListing(mock.Anything, "l1", tt.onlyPublic).Return([]*domain.Review{}, nil)

			_, err := svc.ListForListing(context.Background(), tt.actor, "l1")

			require.NoError(t, err)
		})
	}
}
