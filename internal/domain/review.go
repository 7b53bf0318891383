package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinRating           = 1
	MaxRating           = 5
	MaxReviewTitleLen   = 200
	maxOwnerResponseLen = 2000
)

type Review struct {
	ID            string     `json:"id"`
	ListingID     string     `json:"listing_id"`
	UserID        string     `json:"user_id"`
	Rating        int        `json:"rating"`
	Title         string     `json:"title"`
	Comment       string     `json:"comment"`
	StayDate      *time.Time `json:"stay_date"`
	IsPublic      bool       `json:"is_public"`
	OwnerResponse string     `json:"owner_response"`
	ResponseDate  *time.Time `json:"response_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

type CreateReviewInput struct {
	ListingID string
	UserID    string
	Rating    int
	Title     string
	Comment   string
	StayDate  *time.Time
	IsPublic  *bool
}

func (in CreateReviewInput) Validate(today time.Time) error {
	if err := ValidateRating(in.Rating); err != nil {
		return err
	}
	if err := validateReviewText(in.Title, in.Comment); err != nil {
		return err
	}
	return ValidateStayDate(in.StayDate, today)
}

type UpdateReviewInput struct {
	Rating  *int
	Title   *string
	Comment *string
}

func (in UpdateReviewInput) Apply(r *Review) error {
	if in.Rating != nil {
		if err := ValidateRating(*in.Rating); err != nil {
			return err
		}
		r.Rating = *in.Rating
	}
	if in.Title != nil {
		r.Title = *in.Title
	}
	if in.Comment != nil {
		r.Comment = *in.Comment
	}
	return validateReviewText(r.Title, r.Comment)
}

func validateReviewText(title, comment string) error {
	if strings.TrimSpace(title) == "" {
		return newError(ErrValidation, "review title is required")
	}
	if len([]rune(title)) > MaxReviewTitleLen {
		return newError(ErrValidation, "review title is too long")
	}
	if strings.TrimSpace(comment) == "" {
		return newError(ErrValidation, "review comment is required")
	}
	return nil
}

func ValidateOwnerResponse(text string) error {
	if strings.TrimSpace(text) == "" {
		return newError(ErrValidation, "response text is required")
	}
	if len([]rune(text)) > maxOwnerResponseLen {
		return newError(ErrValidation, "response text is too long")
	}
	return nil
}

// CheckReviewEligibility decides whether a user may review a listing given
// whether they already reviewed it and their bookings on it.
func CheckReviewEligibility(alreadyReviewed bool, bookings []*Booking, today time.Time) error {
	if alreadyReviewed {
		return ErrDuplicateReview
	}
	for _, b := range bookings {
		if b.Status == BookingStatusCompleted && !DateOf(b.CheckOut).After(DateOf(today)) {
			return nil
		}
	}
	return ErrReviewNotEligible
}

// CanModerate reports whether actor may change the visibility of a review.
func (r *Review) CanModerate(actor Actor, listingOwnerID string) bool {
	return actor.IsStaff || actor.UserID == r.UserID || actor.UserID == listingOwnerID
}

func (r *Review) CanDelete(actor Actor) bool {
	return actor.IsStaff || actor.UserID == r.UserID
}

type RatingSummary struct {
	Average decimal.Decimal
	Count   int
}

// ComputeRating returns the mean rating of the public reviews rounded to two
// places, or zero when none are public.
func ComputeRating(reviews []*Review) RatingSummary {
	var sum, count int64
	for _, r := range reviews {
		if !r.IsPublic {
			continue
		}
		sum += int64(r.Rating)
		count++
	}
	if count == 0 {
		return RatingSummary{Average: decimal.Zero}
	}
	avg := decimal.NewFromInt(sum).Div(decimal.NewFromInt(count)).Round(2)
	return RatingSummary{Average: avg, Count: int(count)}
}
