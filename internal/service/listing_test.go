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

type listingDeps struct {
	listings *mocks.MockListingRepo
	reviews  *mocks.MockReviewRepo
	cache    *mocks.MockListingCache
}

func newListingService(t *testing.T) (*ListingService, listingDeps) {
	t.Helper()
	d := listingDeps{
		listings: mocks.NewMockListingRepo(t),
		reviews:  mocks.NewMockReviewRepo(t),
		cache:    mocks.NewMockListingCache(t),
	}
	svc := NewListingService(d.listings, d.reviews, d.cache, newTestLogger(t))
	svc.now = fixedClock
	return svc, d
}

func validListingInput() domain.CreateListingInput {
	return domain.CreateListingInput{
		Title:         "Loft",
		City:          "Porto",
		Country:       "Portugal",
		PricePerNight: decimal.RequireFromString("85.50"),
		Bedrooms:      1,
		Bathrooms:     decimal.RequireFromString("1"),
		MaxGuests:     2,
		PropertyType:  domain.PropertyApartment,
	}
}

func TestListingService_Create(t *testing.T) {
	svc, d := newListingService(t)

	d.listings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validListingInput()
	input.OwnerID = "someone-else"
	l, err := svc.Create(context.Background(), domain.Actor{UserID: "host"}, input)

	require.NoError(t, err)
	assert.Equal(t, "host", l.OwnerID)
	assert.True(t, l.IsAvailable)
	assert.True(t, l.AverageRating.IsZero())
	assert.Equal(t, 0, l.ReviewCount)
}

func TestListingService_Create_StaffAssignsOwner(t *testing.T) {
	svc, d := newListingService(t)

	d.listings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validListingInput()
	input.OwnerID = "host-2"
	l, err := svc.Create(context.Background(), domain.Actor{UserID: "admin", IsStaff: true}, input)

	require.NoError(t, err)
	assert.Equal(t, "host-2", l.OwnerID)
}

func TestListingService_Create_Invalid(t *testing.T) {
	svc, _ := newListingService(t)

	input := validListingInput()
	input.PricePerNight = decimal.Zero

	_, err := svc.Create(context.Background(), domain.Actor{UserID: "host"}, input)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = svc.Create(context.Background(), domain.Actor{}, validListingInput())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestListingService_GetDetails_CacheHit(t *testing.T) {
	svc, d := newListingService(t)

	cached := &domain.ListingDetails{Listing: *testListing("l1", "owner")}
	d.cache.EXPECT().Get(mock.Anything, "l1").Return(cached, true)

	details, err := svc.GetDetails(context.Background(), "l1")

	require.NoError(t, err)
	assert.Same(t, cached, details)
}

func TestListingService_GetDetails_CacheMiss(t *testing.T) {
	svc, d := newListingService(t)

	d.cache.EXPECT().Get(mock.Anything, "l1").Return(nil, false)
	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing("l1", "owner"), nil)
	d.reviews.EXPECT().ListByListing(mock.Anything, "l1", true).
		Return([]*domain.Review{{ID: "r1", Rating: 5, IsPublic: true}}, nil)
	d.cache.EXPECT().Set(mock.Anything, "l1", mock.Anything).Return()

	details, err := svc.GetDetails(context.Background(), "l1")

	require.NoError(t, err)
	assert.Equal(t, "l1", details.Listing.ID)
	assert.Len(t, details.Reviews, 1)
}

func TestListingService_Update(t *testing.T) {
	svc, d := newListingService(t)

	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing("l1", "owner"), nil)
	d.listings.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "l1").Return()

	price := decimal.RequireFromString("120")
	l, err := svc.Update(context.Background(), domain.Actor{UserID: "owner"}, "l1", domain.UpdateListingInput{PricePerNight: &price})

	require.NoError(t, err)
	assert.True(t, price.Equal(l.PricePerNight))
	assert.Equal(t, testNow, l.UpdatedAt)
}

func TestListingService_Update_Forbidden(t *testing.T) {
	svc, d := newListingService(t)

	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing("l1", "owner"), nil)

	_, err := svc.Update(context.Background(), domain.Actor{UserID: "intruder"}, "l1", domain.UpdateListingInput{})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListingService_Delete(t *testing.T) {
	svc, d := newListingService(t)

	d.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing("l1", "owner"), nil)
	d.listings.EXPECT().Delete(mock.Anything, "l1").Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "l1").Return()

	err := svc.Delete(context.Background(), domain.Actor{UserID: "admin", IsStaff: true}, "l1")

	require.NoError(t, err)
}
