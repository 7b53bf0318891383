package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListReviews(c *ginext.Context) {
	listingID, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListForListing(c.Request.Context(), actor(c), listingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ToReviewResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// ReviewEligibility reports whether the caller may review the listing. A
// negative answer carries the reason rather than an error status.
func (h *Handler) ReviewEligibility(c *ginext.Context) {
	listingID, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	err := h.reviewService.CanReview(c.Request.Context(), listingID, actor(c).UserID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.EligibilityResponse{CanReview: true})
	case errors.Is(err, domain.ErrReviewNotEligible), errors.Is(err, domain.ErrDuplicateReview):
		c.JSON(http.StatusOK, dto.EligibilityResponse{CanReview: false, Reason: err.Error()})
	default:
		h.handleError(c, err)
	}
}

func (h *Handler) CreateReview(c *ginext.Context) {
	listingID, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	input := domain.CreateReviewInput{
		ListingID: listingID,
		UserID:    actor(c).UserID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
		IsPublic:  req.IsPublic,
	}
	if req.StayDate != "" {
		var stayDate time.Time
		if stayDate, ok = parseDate(c, "stay_date", req.StayDate); !ok {
			return
		}
		input.StayDate = &stayDate
	}

	review, err := h.reviewService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *Handler) UpdateReview(c *ginext.Context) {
	id, ok := pathID(c, "id", "review")
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	input := domain.UpdateReviewInput{
		Rating:  req.Rating,
		Title:   req.Title,
		Comment: req.Comment,
	}

	review, err := h.reviewService.Update(c.Request.Context(), actor(c), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

func (h *Handler) SetReviewVisibility(c *ginext.Context) {
	id, ok := pathID(c, "id", "review")
	if !ok {
		return
	}

	var req dto.ReviewVisibilityRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.SetVisibility(c.Request.Context(), actor(c), id, *req.IsPublic)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

func (h *Handler) RespondToReview(c *ginext.Context) {
	id, ok := pathID(c, "id", "review")
	if !ok {
		return
	}

	var req dto.ReviewResponseRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.Respond(c.Request.Context(), actor(c), id, req.Response)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

func (h *Handler) DeleteReview(c *ginext.Context) {
	id, ok := pathID(c, "id", "review")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), actor(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
