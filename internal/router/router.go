package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateListing(c *ginext.Context)
	GetListing(c *ginext.Context)
	ListListings(c *ginext.Context)
	UpdateListing(c *ginext.Context)
	DeleteListing(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	QuoteListing(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	RescheduleBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)

	ListReviews(c *ginext.Context)
	ReviewEligibility(c *ginext.Context)
	CreateReview(c *ginext.Context)
	UpdateReview(c *ginext.Context)
	SetReviewVisibility(c *ginext.Context)
	RespondToReview(c *ginext.Context)
	DeleteReview(c *ginext.Context)

	CreateUser(c *ginext.Context)
	Login(c *ginext.Context)
	CurrentUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

// Guards are the per-route middlewares. Auth runs on every /api request and
// resolves the caller; RequireAuth protects routes that need one.
type Guards struct {
	Auth        ginext.HandlerFunc
	RequireAuth ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, g Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api", g.Auth)
	{
		// Users
		api.POST("/users", h.CreateUser)
		api.POST("/auth/login", h.Login)

		// Listings
		api.GET("/listings", h.ListListings)
		api.GET("/listings/:id", h.GetListing)
		api.GET("/listings/:id/availability", h.CheckAvailability)
		api.GET("/listings/:id/quote", h.QuoteListing)
		api.GET("/listings/:id/reviews", h.ListReviews)
	}

	private := api.Group("", g.RequireAuth)
	{
		private.GET("/users", h.ListUsers)
		private.GET("/users/me", h.CurrentUser)

		private.POST("/listings", h.CreateListing)
		private.PATCH("/listings/:id", h.UpdateListing)
		private.DELETE("/listings/:id", h.DeleteListing)

		// Bookings
		private.POST("/bookings", h.CreateBooking)
		private.GET("/bookings", h.ListBookings)
		private.GET("/bookings/:id", h.GetBooking)
		private.PATCH("/bookings/:id", h.RescheduleBooking)
		private.POST("/bookings/:id/cancel", h.CancelBooking)
		private.POST("/bookings/:id/status", h.UpdateBookingStatus)

		// Reviews
		private.GET("/listings/:id/reviews/eligibility", h.ReviewEligibility)
		private.POST("/listings/:id/reviews", h.CreateReview)
		private.PATCH("/reviews/:id", h.UpdateReview)
		private.PATCH("/reviews/:id/visibility", h.SetReviewVisibility)
		private.POST("/reviews/:id/response", h.RespondToReview)
		private.DELETE("/reviews/:id", h.DeleteReview)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
