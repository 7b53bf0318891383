package dto

import (
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

// ListingResponse is the basic listing view used in collections.
type ListingResponse struct {
	ID            string   `json:"id"`
	OwnerID       string   `json:"owner_id"`
	Title         string   `json:"title"`
	City          string   `json:"city"`
	Country       string   `json:"country"`
	PricePerNight string   `json:"price_per_night"`
	MaxGuests     int      `json:"max_guests"`
	PropertyType  string   `json:"property_type"`
	IsAvailable   bool     `json:"is_available"`
	AverageRating string   `json:"average_rating"`
	ReviewCount   int      `json:"review_count"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// ListingDetailResponse extends the basic view with the full description,
// amenity flags and public reviews.
type ListingDetailResponse struct {
	ListingResponse
	Description        string           `json:"description"`
	Address            string           `json:"address"`
	Bedrooms           int              `json:"bedrooms"`
	Bathrooms          string           `json:"bathrooms"`
	Amenities          []string         `json:"amenities"`
	HasWifi            bool             `json:"has_wifi"`
	HasParking         bool             `json:"has_parking"`
	HasKitchen         bool             `json:"has_kitchen"`
	HasAirConditioning bool             `json:"has_air_conditioning"`
	HasHeating         bool             `json:"has_heating"`
	HasTV              bool             `json:"has_tv"`
	HasWasher          bool             `json:"has_washer"`
	HasPool            bool             `json:"has_pool"`
	PetFriendly        bool             `json:"pet_friendly"`
	Reviews            []ReviewResponse `json:"reviews"`
	CreatedAt          string           `json:"created_at"`
	UpdatedAt          string           `json:"updated_at"`
}

type BookingResponse struct {
	ID                 string `json:"id"`
	ListingID          string `json:"listing_id"`
	GuestID            string `json:"guest_id"`
	CheckIn            string `json:"check_in"`
	CheckOut           string `json:"check_out"`
	Nights             int    `json:"nights"`
	Guests             int    `json:"guests"`
	TotalPrice         string `json:"total_price"`
	Status             string `json:"status"`
	SpecialRequests    string `json:"special_requests,omitempty"`
	CancelledAt        string `json:"cancelled_at,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

type ReviewResponse struct {
	ID            string `json:"id"`
	ListingID     string `json:"listing_id"`
	UserID        string `json:"user_id"`
	Rating        int    `json:"rating"`
	Title         string `json:"title"`
	Comment       string `json:"comment"`
	StayDate      string `json:"stay_date,omitempty"`
	IsPublic      bool   `json:"is_public"`
	OwnerResponse string `json:"owner_response,omitempty"`
	ResponseDate  string `json:"response_date,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type QuoteResponse struct {
	ListingID     string `json:"listing_id"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Nights        int    `json:"nights"`
	PricePerNight string `json:"price_per_night"`
	TotalPrice    string `json:"total_price"`
	Available     bool   `json:"available"`
}

type AvailabilityResponse struct {
	ListingID string `json:"listing_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}

type EligibilityResponse struct {
	CanReview bool   `json:"can_review"`
	Reason    string `json:"reason,omitempty"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	IsStaff   bool   `json:"is_staff"`
	CreatedAt string `json:"created_at"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:            l.ID,
		OwnerID:       l.OwnerID,
		Title:         l.Title,
		City:          l.City,
		Country:       l.Country,
		PricePerNight: l.PricePerNight.StringFixed(2),
		MaxGuests:     l.MaxGuests,
		PropertyType:  string(l.PropertyType),
		IsAvailable:   l.IsAvailable,
		AverageRating: l.AverageRating.StringFixed(2),
		ReviewCount:   l.ReviewCount,
		Latitude:      l.Latitude,
		Longitude:     l.Longitude,
	}
}

func ToListingDetailResponse(d *domain.ListingDetails) ListingDetailResponse {
	l := &d.Listing

	amenities := l.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	reviews := make([]ReviewResponse, 0, len(d.Reviews))
	for i := range d.Reviews {
		reviews = append(reviews, ToReviewResponse(&d.Reviews[i]))
	}

	return ListingDetailResponse{
		ListingResponse:    ToListingResponse(l),
		Description:        l.Description,
		Address:            l.Address,
		Bedrooms:           l.Bedrooms,
		Bathrooms:          l.Bathrooms.StringFixed(1),
		Amenities:          amenities,
		HasWifi:            l.HasAmenity(domain.AmenityWifi),
		HasParking:         l.HasAmenity(domain.AmenityParking),
		HasKitchen:         l.HasAmenity(domain.AmenityKitchen),
		HasAirConditioning: l.HasAmenity(domain.AmenityAirConditioning),
		HasHeating:         l.HasAmenity(domain.AmenityHeating),
		HasTV:              l.HasAmenity(domain.AmenityTV),
		HasWasher:          l.HasAmenity(domain.AmenityWasher),
		HasPool:            l.HasAmenity(domain.AmenityPool),
		PetFriendly:        l.HasAmenity(domain.AmenityPetsAllowed),
		Reviews:            reviews,
		CreatedAt:          l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          l.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                 b.ID,
		ListingID:          b.ListingID,
		GuestID:            b.GuestID,
		CheckIn:            b.CheckIn.Format(domain.DateLayout),
		CheckOut:           b.CheckOut.Format(domain.DateLayout),
		Nights:             b.Nights(),
		Guests:             b.Guests,
		TotalPrice:         b.TotalPrice.StringFixed(2),
		Status:             string(b.Status),
		SpecialRequests:    b.SpecialRequests,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
	if b.CancelledAt != nil {
		resp.CancelledAt = b.CancelledAt.Format(time.RFC3339)
	}
	return resp
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:            r.ID,
		ListingID:     r.ListingID,
		UserID:        r.UserID,
		Rating:        r.Rating,
		Title:         r.Title,
		Comment:       r.Comment,
		IsPublic:      r.IsPublic,
		OwnerResponse: r.OwnerResponse,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
	if r.StayDate != nil {
		resp.StayDate = r.StayDate.Format(domain.DateLayout)
	}
	if r.ResponseDate != nil {
		resp.ResponseDate = r.ResponseDate.Format(time.RFC3339)
	}
	return resp
}

func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ListingID:     q.ListingID,
		CheckIn:       q.CheckIn.Format(domain.DateLayout),
		CheckOut:      q.CheckOut.Format(domain.DateLayout),
		Nights:        q.Nights,
		PricePerNight: q.PricePerNight.StringFixed(2),
		TotalPrice:    q.TotalPrice.StringFixed(2),
		Available:     q.Available,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
