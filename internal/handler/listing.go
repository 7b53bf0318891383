package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateListing(c *ginext.Context) {
	var req dto.CreateListingRequest
	if !bindJSON(c, &req) {
		return
	}

	price, err := decimal.NewFromString(req.PricePerNight)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid price_per_night"})
		return
	}

	bathrooms := decimal.NewFromInt(1)
	if req.Bathrooms != "" {
		if bathrooms, err = decimal.NewFromString(req.Bathrooms); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid bathrooms"})
			return
		}
	}

	input := domain.CreateListingInput{
		OwnerID:       req.OwnerID,
		Title:         req.Title,
		Description:   req.Description,
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		PricePerNight: price,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     bathrooms,
		MaxGuests:     req.MaxGuests,
		PropertyType:  domain.PropertyType(strings.ToUpper(req.PropertyType)),
		Amenities:     req.Amenities,
		IsAvailable:   req.IsAvailable,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	}

	listing, err := h.listingService.Create(c.Request.Context(), actor(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingDetailResponse(&domain.ListingDetails{Listing: *listing}))
}

func (h *Handler) GetListing(c *ginext.Context) {
	id, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	details, err := h.listingService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingDetailResponse(details))
}

func (h *Handler) ListListings(c *ginext.Context) {
	filter := domain.ListingFilter{
		City:          c.Query("city"),
		Country:       c.Query("country"),
		PropertyType:  domain.PropertyType(strings.ToUpper(c.Query("property_type"))),
		OwnerID:       c.Query("owner_id"),
		OnlyAvailable: c.Query("available") == "true",
	}
	if v := c.Query("guests"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid guests"})
			return
		}
		filter.MinGuests = n
	}

	listings, err := h.listingService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, dto.ToListingResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateListing(c *ginext.Context) {
	id, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	var req dto.UpdateListingRequest
	if !bindJSON(c, &req) {
		return
	}

	input := domain.UpdateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Bedrooms:    req.Bedrooms,
		MaxGuests:   req.MaxGuests,
		Amenities:   req.Amenities,
		IsAvailable: req.IsAvailable,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	if req.PricePerNight != nil {
		price, err := decimal.NewFromString(*req.PricePerNight)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid price_per_night"})
			return
		}
		input.PricePerNight = &price
	}
	if req.Bathrooms != nil {
		bathrooms, err := decimal.NewFromString(*req.Bathrooms)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid bathrooms"})
			return
		}
		input.Bathrooms = &bathrooms
	}
	if req.PropertyType != nil {
		pt := domain.PropertyType(strings.ToUpper(*req.PropertyType))
		input.PropertyType = &pt
	}

	listing, err := h.listingService.Update(c.Request.Context(), actor(c), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *Handler) DeleteListing(c *ginext.Context) {
	id, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	if err := h.listingService.Delete(c.Request.Context(), actor(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) CheckAvailability(c *ginext.Context) {
	id, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	checkIn, ok := parseDate(c, "check_in", c.Query("check_in"))
	if !ok {
		return
	}
	checkOut, ok := parseDate(c, "check_out", c.Query("check_out"))
	if !ok {
		return
	}

	available, err := h.availabilityService.IsAvailable(c.Request.Context(), id, checkIn, checkOut, c.Query("exclude_booking_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		ListingID: id,
		CheckIn:   checkIn.Format(domain.DateLayout),
		CheckOut:  checkOut.Format(domain.DateLayout),
		Available: available,
	})
}

func (h *Handler) QuoteListing(c *ginext.Context) {
	id, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	checkIn, ok := parseDate(c, "check_in", c.Query("check_in"))
	if !ok {
		return
	}
	checkOut, ok := parseDate(c, "check_out", c.Query("check_out"))
	if !ok {
		return
	}

	quote, err := h.availabilityService.Quote(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}
