package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type ListingSvc interface {
	Create(ctx context.Context, actor domain.Actor, input domain.CreateListingInput) (*domain.Listing, error)
	GetDetails(ctx context.Context, id string) (*domain.ListingDetails, error)
	List(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error)
	Update(ctx context.Context, actor domain.Actor, id string, input domain.UpdateListingInput) (*domain.Listing, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

type AvailabilitySvc interface {
	IsAvailable(ctx context.Context, listingID string, checkIn, checkOut time.Time, excludeBookingID string) (bool, error)
	Quote(ctx context.Context, listingID string, checkIn, checkOut time.Time) (*domain.Quote, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, actor domain.Actor, bookingID, reason string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, bookingID string, next domain.BookingStatus) (*domain.Booking, error)
	Reschedule(ctx context.Context, actor domain.Actor, bookingID string, input domain.RescheduleBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error)
	List(ctx context.Context, actor domain.Actor, filter domain.BookingFilter) ([]*domain.Booking, error)
}

type ReviewSvc interface {
	CanReview(ctx context.Context, listingID, userID string) error
	Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error)
	Update(ctx context.Context, actor domain.Actor, reviewID string, input domain.UpdateReviewInput) (*domain.Review, error)
	SetVisibility(ctx context.Context, actor domain.Actor, reviewID string, isPublic bool) (*domain.Review, error)
	Delete(ctx context.Context, actor domain.Actor, reviewID string) error
	Respond(ctx context.Context, actor domain.Actor, reviewID, text string) (*domain.Review, error)
	ListForListing(ctx context.Context, actor domain.Actor, listingID string) ([]*domain.Review, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Authenticate(ctx context.Context, username string, password string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	listingService      ListingSvc
	availabilityService AvailabilitySvc
	bookingService      BookingSvc
	reviewService       ReviewSvc
	userService         UserSvc
	tokens              TokenConfig
}

// TokenConfig controls the access tokens minted by Login.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

func NewHandler(
	listingService ListingSvc,
	availabilityService AvailabilitySvc,
	bookingService BookingSvc,
	reviewService ReviewSvc,
	userService UserSvc,
	tokens TokenConfig,
) *Handler {
	return &Handler{
		listingService:      listingService,
		availabilityService: availabilityService,
		bookingService:      bookingService,
		reviewService:       reviewService,
		userService:         userService,
		tokens:              tokens,
	}
}

// pathID reads and validates a uuid path parameter, writing a 400 on failure.
func pathID(c *ginext.Context, name, what string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func parseDate(c *ginext.Context, field, value string) (time.Time, bool) {
	d, err := domain.ParseDate(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid " + field + " format, expected YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return d, true
}

func bindJSON(c *ginext.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func actor(c *ginext.Context) domain.Actor {
	return middleware.ActorFrom(c)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrState):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
