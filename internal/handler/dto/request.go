package dto

type CreateListingRequest struct {
	OwnerID       string   `json:"owner_id"`
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	City          string   `json:"city" binding:"required"`
	Country       string   `json:"country" binding:"required"`
	PricePerNight string   `json:"price_per_night" binding:"required"`
	Bedrooms      int      `json:"bedrooms" binding:"gte=0"`
	Bathrooms     string   `json:"bathrooms"`
	MaxGuests     int      `json:"max_guests" binding:"required,gt=0"`
	PropertyType  string   `json:"property_type" binding:"required"`
	Amenities     []string `json:"amenities"`
	IsAvailable   *bool    `json:"is_available"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

type UpdateListingRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Address       *string  `json:"address"`
	City          *string  `json:"city"`
	Country       *string  `json:"country"`
	PricePerNight *string  `json:"price_per_night"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *string  `json:"bathrooms"`
	MaxGuests     *int     `json:"max_guests"`
	PropertyType  *string  `json:"property_type"`
	Amenities     []string `json:"amenities"`
	IsAvailable   *bool    `json:"is_available"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

type CreateBookingRequest struct {
	ListingID       string  `json:"listing_id" binding:"required,uuid"`
	CheckIn         string  `json:"check_in" binding:"required"`
	CheckOut        string  `json:"check_out" binding:"required"`
	Guests          int     `json:"guests" binding:"required"`
	SpecialRequests string  `json:"special_requests"`
	TotalPrice      *string `json:"total_price"`
}

type RescheduleBookingRequest struct {
	CheckIn         string  `json:"check_in" binding:"required"`
	CheckOut        string  `json:"check_out" binding:"required"`
	Guests          *int    `json:"guests"`
	SpecialRequests *string `json:"special_requests"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateReviewRequest struct {
	Rating   int    `json:"rating" binding:"required"`
	Title    string `json:"title"`
	Comment  string `json:"comment"`
	StayDate string `json:"stay_date"`
	IsPublic *bool  `json:"is_public"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Title   *string `json:"title"`
	Comment *string `json:"comment"`
}

type ReviewVisibilityRequest struct {
	IsPublic *bool `json:"is_public" binding:"required"`
}

type ReviewResponseRequest struct {
	Response string `json:"response" binding:"required"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsStaff  bool   `json:"is_staff"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
