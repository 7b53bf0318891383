package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/StayBooker/internal/handler/mocks"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/stpnv0/StayBooker/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type svcMocks struct {
	listings     *hmocks.MockListingSvc
	availability *hmocks.MockAvailabilitySvc
	bookings     *hmocks.MockBookingSvc
	reviews      *hmocks.MockReviewSvc
	users        *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (*svcMocks, http.Handler) {
	t.Helper()
	m := &svcMocks{
		listings:     hmocks.NewMockListingSvc(t),
		availability: hmocks.NewMockAvailabilitySvc(t),
		bookings:     hmocks.NewMockBookingSvc(t),
		reviews:      hmocks.NewMockReviewSvc(t),
		users:        hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.listings, m.availability, m.bookings, m.reviews, m.users, TokenConfig{
		Secret: testSecret,
		TTL:    time.Hour,
	})
	r := router.InitRouter("test", h, router.Guards{
		Auth:        middleware.Auth(testSecret),
		RequireAuth: middleware.RequireAuth(),
	})

	return m, r
}

func token(t *testing.T, userID string, isStaff bool) string {
	t.Helper()
	tok, err := middleware.IssueToken(testSecret, userID, isStaff, time.Hour)
	require.NoError(t, err)
	return tok
}

func doRequest(r http.Handler, method, path string, body any, tok string, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func sampleListing(id, ownerID string) *domain.Listing {
	return &domain.Listing{
		ID:            id,
		OwnerID:       ownerID,
		Title:         "Sea view flat",
		City:          "Lisbon",
		Country:       "Portugal",
		PricePerNight: decimal.RequireFromString("100"),
		Bathrooms:     decimal.RequireFromString("1.5"),
		MaxGuests:     4,
		PropertyType:  domain.PropertyApartment,
		Amenities:     []string{"wifi", "kitchen"},
		IsAvailable:   true,
		AverageRating: decimal.RequireFromString("4.5"),
		ReviewCount:   2,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

// --- Listings ---

func TestHandler_GetListing_DetailView(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	details := &domain.ListingDetails{
		Listing: *sampleListing(id, uuid.New().String()),
		Reviews: []domain.Review{{ID: "r1", ListingID: id, Rating: 5, IsPublic: true, CreatedAt: time.Now()}},
	}
	details.Listing.Amenities = []string{"wifi", "kitchen", "Air Conditioning", "washer", "pets allowed"}
	m.listings.EXPECT().GetDetails(mock.Anything, id).Return(details, nil)

	w := doRequest(r, http.MethodGet, "/api/listings/"+id, nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListingDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "100.00", resp.PricePerNight)
	assert.Equal(t, "4.50", resp.AverageRating)
	assert.True(t, resp.HasWifi)
	assert.True(t, resp.HasKitchen)
	assert.True(t, resp.HasAirConditioning)
	assert.True(t, resp.HasWasher)
	assert.True(t, resp.PetFriendly)
	assert.False(t, resp.HasHeating)
	assert.False(t, resp.HasTV)
	assert.False(t, resp.HasParking)
	assert.False(t, resp.HasPool)
	assert.Len(t, resp.Reviews, 1)
}

func TestHandler_GetListing_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/listings/not-a-uuid", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetListing_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.listings.EXPECT().GetDetails(mock.Anything, id).Return(nil, domain.ErrListingNotFound)

	w := doRequest(r, http.MethodGet, "/api/listings/"+id, nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListListings_Filter(t *testing.T) {
	m, r := setupRouter(t)

	m.listings.EXPECT().
		List(mock.Anything, domain.ListingFilter{City: "Lisbon", MinGuests: 3, PropertyType: domain.PropertyVilla, OnlyAvailable: true}).
		Return([]*domain.Listing{sampleListing(uuid.New().String(), "o1")}, nil)

	w := doRequest(r, http.MethodGet, "/api/listings?city=Lisbon&guests=3&property_type=villa&available=true", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_CreateListing_RequiresAuth(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/listings", dto.CreateListingRequest{Title: "X"}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateListing_Success(t *testing.T) {
	m, r := setupRouter(t)

	ownerID := uuid.New().String()
	m.listings.EXPECT().
		Create(mock.Anything, domain.Actor{UserID: ownerID}, mock.MatchedBy(func(in domain.CreateListingInput) bool {
			return in.PricePerNight.Equal(decimal.RequireFromString("120.5")) && in.PropertyType == domain.PropertyCabin
		})).
		Return(sampleListing(uuid.New().String(), ownerID), nil)

	req := dto.CreateListingRequest{
		Title:         "Cabin",
		City:          "Tromso",
		Country:       "Norway",
		PricePerNight: "120.5",
		MaxGuests:     2,
		PropertyType:  "cabin",
	}
	w := doRequest(r, http.MethodPost, "/api/listings", req, token(t, ownerID, false))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateListing_InvalidPrice(t *testing.T) {
	_, r := setupRouter(t)

	req := dto.CreateListingRequest{
		Title: "Cabin", City: "Tromso", Country: "Norway",
		PricePerNight: "cheap", MaxGuests: 2, PropertyType: "CABIN",
	}
	w := doRequest(r, http.MethodPost, "/api/listings", req, token(t, uuid.New().String(), false))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateListing_Forbidden(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.listings.EXPECT().Update(mock.Anything, mock.Anything, id, mock.Anything).Return(nil, domain.ErrForbidden)

	title := "Renamed"
	w := doRequest(r, http.MethodPatch, "/api/listings/"+id, dto.UpdateListingRequest{Title: &title}, token(t, "stranger", false))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteListing(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.listings.EXPECT().Delete(mock.Anything, domain.Actor{UserID: "owner"}, id).Return(nil)

	w := doRequest(r, http.MethodDelete, "/api/listings/"+id, nil, token(t, "owner", false))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_CheckAvailability(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.availability.EXPECT().
		IsAvailable(mock.Anything, id, mustDate(t, "2025-01-08"), mustDate(t, "2025-01-12"), "").
		Return(false, nil)

	w := doRequest(r, http.MethodGet, "/api/listings/"+id+"/availability?check_in=2025-01-08&check_out=2025-01-12", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
}

func TestHandler_CheckAvailability_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	id := uuid.New().String()
	w := doRequest(r, http.MethodGet, "/api/listings/"+id+"/availability?check_in=01/08/2025&check_out=2025-01-12", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_QuoteListing(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	in, out := mustDate(t, "2025-01-05"), mustDate(t, "2025-01-10")
	m.availability.EXPECT().Quote(mock.Anything, id, in, out).Return(&domain.Quote{
		ListingID:     id,
		CheckIn:       in,
		CheckOut:      out,
		Nights:        5,
		PricePerNight: decimal.RequireFromString("100"),
		TotalPrice:    decimal.RequireFromString("500"),
		Available:     true,
	}, nil)

	w := doRequest(r, http.MethodGet, "/api/listings/"+id+"/quote?check_in=2025-01-05&check_out=2025-01-10", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "500.00", resp.TotalPrice)
	assert.Equal(t, 5, resp.Nights)
}

func TestHandler_QuoteListing_InvalidRange(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.availability.EXPECT().Quote(mock.Anything, id, mock.Anything, mock.Anything).Return(nil, domain.ErrDateRangeInvalid)

	w := doRequest(r, http.MethodGet, "/api/listings/"+id+"/quote?check_in=2025-01-10&check_out=2025-01-10", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	guestID := uuid.New().String()
	listingID := uuid.New().String()
	in, out := mustDate(t, "2030-01-05"), mustDate(t, "2030-01-10")

	m.bookings.EXPECT().Create(mock.Anything, domain.CreateBookingInput{
		ListingID:      listingID,
		GuestID:        guestID,
		CheckIn:        in,
		CheckOut:       out,
		Guests:         2,
		IdempotencyKey: "req-1",
	}).Return(&domain.Booking{
		ID:         uuid.New().String(),
		ListingID:  listingID,
		GuestID:    guestID,
		CheckIn:    in,
		CheckOut:   out,
		Guests:     2,
		TotalPrice: decimal.RequireFromString("500"),
		Status:     domain.BookingStatusPending,
	}, nil)

	req := dto.CreateBookingRequest{ListingID: listingID, CheckIn: "2030-01-05", CheckOut: "2030-01-10", Guests: 2}
	w := doRequest(r, http.MethodPost, "/api/bookings", req, token(t, guestID, false), "Idempotency-Key", "req-1")

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "500.00", resp.TotalPrice)
	assert.Equal(t, 5, resp.Nights)
	assert.Equal(t, "2030-01-05", resp.CheckIn)
	assert.Equal(t, "PENDING", resp.Status)
}

func TestHandler_CreateBooking_Conflict(t *testing.T) {
	m, r := setupRouter(t)

	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrBookingConflict)

	req := dto.CreateBookingRequest{ListingID: uuid.New().String(), CheckIn: "2030-01-08", CheckOut: "2030-01-12", Guests: 1}
	w := doRequest(r, http.MethodPost, "/api/bookings", req, token(t, "guest", false))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_CapacityExceeded(t *testing.T) {
	m, r := setupRouter(t)

	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrCapacityExceeded)

	req := dto.CreateBookingRequest{ListingID: uuid.New().String(), CheckIn: "2030-01-08", CheckOut: "2030-01-12", Guests: 9}
	w := doRequest(r, http.MethodPost, "/api/bookings", req, token(t, "guest", false))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_Unauthenticated(t *testing.T) {
	_, r := setupRouter(t)

	req := dto.CreateBookingRequest{ListingID: uuid.New().String(), CheckIn: "2030-01-08", CheckOut: "2030-01-12", Guests: 1}
	w := doRequest(r, http.MethodPost, "/api/bookings", req, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CancelBooking_AlreadyCompleted(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookings.EXPECT().Cancel(mock.Anything, domain.Actor{UserID: "guest"}, id, "Change of plans").
		Return(nil, domain.ErrAlreadyCompleted)

	w := doRequest(r, http.MethodPost, "/api/bookings/"+id+"/cancel", dto.CancelBookingRequest{Reason: "Change of plans"}, token(t, "guest", false))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_CancelBooking_NoBody(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	now := time.Now()
	m.bookings.EXPECT().Cancel(mock.Anything, mock.Anything, id, "").Return(&domain.Booking{
		ID: id, Status: domain.BookingStatusCancelled, CancelledAt: &now,
	}, nil)

	w := doRequest(r, http.MethodPost, "/api/bookings/"+id+"/cancel", nil, token(t, "guest", false))

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CANCELLED", resp.Status)
	assert.NotEmpty(t, resp.CancelledAt)
}

func TestHandler_UpdateBookingStatus_InvalidStatus(t *testing.T) {
	_, r := setupRouter(t)

	id := uuid.New().String()
	w := doRequest(r, http.MethodPost, "/api/bookings/"+id+"/status", dto.UpdateBookingStatusRequest{Status: "ARCHIVED"}, token(t, "owner", false))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBookingStatus_InvalidTransition(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookings.EXPECT().UpdateStatus(mock.Anything, mock.Anything, id, domain.BookingStatusPending).
		Return(nil, domain.ErrInvalidTransition)

	w := doRequest(r, http.MethodPost, "/api/bookings/"+id+"/status", dto.UpdateBookingStatusRequest{Status: "pending"}, token(t, "owner", false))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_RescheduleBooking(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	in, out := mustDate(t, "2030-02-01"), mustDate(t, "2030-02-03")
	m.bookings.EXPECT().
		Reschedule(mock.Anything, mock.Anything, id, domain.RescheduleBookingInput{CheckIn: in, CheckOut: out}).
		Return(&domain.Booking{ID: id, CheckIn: in, CheckOut: out, Status: domain.BookingStatusConfirmed}, nil)

	w := doRequest(r, http.MethodPatch, "/api/bookings/"+id, dto.RescheduleBookingRequest{CheckIn: "2030-02-01", CheckOut: "2030-02-03"}, token(t, "guest", false))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetBooking_Forbidden(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookings.EXPECT().Get(mock.Anything, domain.Actor{UserID: "stranger"}, id).Return(nil, domain.ErrForbidden)

	w := doRequest(r, http.MethodGet, "/api/bookings/"+id, nil, token(t, "stranger", false))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListBookings(t *testing.T) {
	m, r := setupRouter(t)

	m.bookings.EXPECT().
		List(mock.Anything, domain.Actor{UserID: "guest"}, domain.BookingFilter{Status: domain.BookingStatusConfirmed}).
		Return([]*domain.Booking{{ID: "b1", Status: domain.BookingStatusConfirmed}}, nil)

	w := doRequest(r, http.MethodGet, "/api/bookings?status=confirmed", nil, token(t, "guest", false))

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Reviews ---

func TestHandler_ReviewEligibility(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		canReview bool
	}{
		{name: "eligible", err: nil, wantCode: http.StatusOK, canReview: true},
		{name: "no completed stay", err: domain.ErrReviewNotEligible, wantCode: http.StatusOK},
		{name: "already reviewed", err: domain.ErrDuplicateReview, wantCode: http.StatusOK},
		{name: "unknown listing", err: domain.ErrListingNotFound, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setupRouter(t)

			id := uuid.New().String()
			m.reviews.EXPECT().CanReview(mock.Anything, id, "guest").Return(tt.err)

			w := doRequest(r, http.MethodGet, "/api/listings/"+id+"/reviews/eligibility", nil, token(t, "guest", false))

			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				var resp dto.EligibilityResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.canReview, resp.CanReview)
			}
		})
	}
}

func TestHandler_CreateReview_Success(t *testing.T) {
	m, r := setupRouter(t)

	listingID := uuid.New().String()
	stay := mustDate(t, "2025-01-10")
	m.reviews.EXPECT().Create(mock.Anything, domain.CreateReviewInput{
		ListingID: listingID,
		UserID:    "guest",
		Rating:    5,
		Title:     "Lovely",
		StayDate:  &stay,
	}).Return(&domain.Review{ID: uuid.New().String(), ListingID: listingID, UserID: "guest", Rating: 5, IsPublic: true}, nil)

	w := doRequest(r, http.MethodPost, "/api/listings/"+listingID+"/reviews",
		dto.CreateReviewRequest{Rating: 5, Title: "Lovely", StayDate: "2025-01-10"}, token(t, "guest", false))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateReview_NotEligible(t *testing.T) {
	m, r := setupRouter(t)

	listingID := uuid.New().String()
	m.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrReviewNotEligible)

	w := doRequest(r, http.MethodPost, "/api/listings/"+listingID+"/reviews", dto.CreateReviewRequest{Rating: 4}, token(t, "guest", false))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReview_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	listingID := uuid.New().String()
	m.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateReview)

	w := doRequest(r, http.MethodPost, "/api/listings/"+listingID+"/reviews", dto.CreateReviewRequest{Rating: 4}, token(t, "guest", false))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListReviews(t *testing.T) {
	m, r := setupRouter(t)

	listingID := uuid.New().String()
	m.reviews.EXPECT().ListForListing(mock.Anything, domain.Actor{}, listingID).
		Return([]*domain.Review{{ID: "r1", Rating: 4, IsPublic: true}}, nil)

	w := doRequest(r, http.MethodGet, "/api/listings/"+listingID+"/reviews", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_SetReviewVisibility(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.reviews.EXPECT().SetVisibility(mock.Anything, domain.Actor{UserID: "admin", IsStaff: true}, id, false).
		Return(&domain.Review{ID: id, IsPublic: false}, nil)

	hidden := false
	w := doRequest(r, http.MethodPatch, "/api/reviews/"+id+"/visibility", dto.ReviewVisibilityRequest{IsPublic: &hidden}, token(t, "admin", true))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SetReviewVisibility_MissingField(t *testing.T) {
	_, r := setupRouter(t)

	id := uuid.New().String()
	w := doRequest(r, http.MethodPatch, "/api/reviews/"+id+"/visibility", []byte(`{}`), token(t, "admin", true))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RespondToReview_Forbidden(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.reviews.EXPECT().Respond(mock.Anything, mock.Anything, id, "Thanks!").Return(nil, domain.ErrForbidden)

	w := doRequest(r, http.MethodPost, "/api/reviews/"+id+"/response", dto.ReviewResponseRequest{Response: "Thanks!"}, token(t, "guest", false))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateReview_InvalidRating(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.reviews.EXPECT().Update(mock.Anything, mock.Anything, id, mock.Anything).Return(nil, domain.ErrInvalidRating)

	rating := 7
	w := doRequest(r, http.MethodPatch, "/api/reviews/"+id, dto.UpdateReviewRequest{Rating: &rating}, token(t, "guest", false))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteReview(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.reviews.EXPECT().Delete(mock.Anything, domain.Actor{UserID: "guest"}, id).Return(nil)

	w := doRequest(r, http.MethodDelete, "/api/reviews/"+id, nil, token(t, "guest", false))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.users.EXPECT().Create(mock.Anything, domain.CreateUserInput{Username: "alice", Email: "alice@example.com"}).
		Return(&domain.User{ID: uuid.New().String(), Username: "alice", Email: "alice@example.com", CreatedAt: time.Now()}, nil)

	w := doRequest(r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "alice", Email: "alice@example.com"}, "")

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateUser_StaffRequiresStaff(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "mallory", IsStaff: true}, token(t, "guest", false))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := doRequest(r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "alice"}, "")

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Login_IssuesUsableToken(t *testing.T) {
	m, r := setupRouter(t)

	m.users.EXPECT().Authenticate(mock.Anything, "alice", "password123").
		Return(&domain.User{ID: "u-alice", Username: "alice"}, nil)
	m.bookings.EXPECT().List(mock.Anything, domain.Actor{UserID: "u-alice"}, domain.BookingFilter{}).
		Return([]*domain.Booking{}, nil)

	w := doRequest(r, http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "alice", Password: "password123"}, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	require.NotEmpty(t, resp.AccessToken)

	w = doRequest(r, http.MethodGet, "/api/bookings", nil, resp.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	m, r := setupRouter(t)

	m.users.EXPECT().Authenticate(mock.Anything, "alice", "nope-nope").Return(nil, domain.ErrInvalidCredentials)

	w := doRequest(r, http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "alice", Password: "nope-nope"}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Login_MissingPassword(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/auth/login", []byte(`{"username":"alice"}`), "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers_StaffOnly(t *testing.T) {
	tests := []struct {
		name     string
		token    func(t *testing.T) string
		wantCode int
	}{
		{"anonymous", func(*testing.T) string { return "" }, http.StatusUnauthorized},
		{"guest", func(t *testing.T) string { return token(t, "guest", false) }, http.StatusForbidden},
		{"staff", func(t *testing.T) string { return token(t, "admin", true) }, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setupRouter(t)
			if tt.wantCode == http.StatusOK {
				m.users.EXPECT().List(mock.Anything).
					Return([]*domain.User{{ID: "u1", Username: "alice", Email: "alice@example.com"}}, nil)
			}

			w := doRequest(r, http.MethodGet, "/api/users", nil, tt.token(t))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				assert.NotContains(t, w.Body.String(), "alice@example.com")
			}
		})
	}
}

func TestHandler_CurrentUser(t *testing.T) {
	m, r := setupRouter(t)

	m.users.EXPECT().GetByID(mock.Anything, "u-alice").
		Return(&domain.User{ID: "u-alice", Username: "alice", Email: "alice@example.com", CreatedAt: time.Now()}, nil)

	w := doRequest(r, http.MethodGet, "/api/users/me", nil, token(t, "u-alice", false))

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CurrentUser_Anonymous(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/users/me", nil, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	m.users.EXPECT().List(mock.Anything).Return(nil, assert.AnError)

	w := doRequest(r, http.MethodGet, "/api/users", nil, token(t, "admin", true))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
}
