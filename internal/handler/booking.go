package handler

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const idempotencyHeader = "Idempotency-Key"

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	checkIn, ok := parseDate(c, "check_in", req.CheckIn)
	if !ok {
		return
	}
	checkOut, ok := parseDate(c, "check_out", req.CheckOut)
	if !ok {
		return
	}

	input := domain.CreateBookingInput{
		ListingID:       req.ListingID,
		GuestID:         actor(c).UserID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		IdempotencyKey:  strings.TrimSpace(c.GetHeader(idempotencyHeader)),
	}
	if req.TotalPrice != nil {
		price, err := decimal.NewFromString(*req.TotalPrice)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid total_price"})
			return
		}
		input.TotalPrice = &price
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), actor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	filter := domain.BookingFilter{
		GuestID:   c.Query("guest_id"),
		ListingID: c.Query("listing_id"),
	}
	if v := c.Query("status"); v != "" {
		status := domain.BookingStatus(strings.ToUpper(v))
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid status"})
			return
		}
		filter.Status = status
	}

	bookings, err := h.bookingService.List(c.Request.Context(), actor(c), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RescheduleBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.RescheduleBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	checkIn, ok := parseDate(c, "check_in", req.CheckIn)
	if !ok {
		return
	}
	checkOut, ok := parseDate(c, "check_out", req.CheckOut)
	if !ok {
		return
	}

	input := domain.RescheduleBookingInput{
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	}

	booking, err := h.bookingService.Reschedule(c.Request.Context(), actor(c), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.CancelBookingRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), actor(c), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.UpdateBookingStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	next := domain.BookingStatus(strings.ToUpper(req.Status))
	if !next.Valid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid status"})
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), actor(c), id, next)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
