package domain

import "errors"

// Families. Every concrete error below unwraps to exactly one of them.
var (
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict")
	ErrState           = errors.New("invalid state")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
)

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func newError(kind error, msg string) error {
	return &kindError{msg: msg, kind: kind}
}

var (
	ErrListingNotFound = newError(ErrNotFound, "listing not found")
	ErrUserNotFound    = newError(ErrNotFound, "user not found")
	ErrBookingNotFound = newError(ErrNotFound, "booking not found")
	ErrReviewNotFound  = newError(ErrNotFound, "review not found")
)

var (
	ErrDateRangeInvalid  = newError(ErrValidation, "check-out must be after check-in")
	ErrCheckInPast       = newError(ErrValidation, "check-in date cannot be in the past")
	ErrCapacityExceeded  = newError(ErrValidation, "number of guests exceeds listing capacity")
	ErrInvalidRating     = newError(ErrValidation, "rating must be between 1 and 5")
	ErrFutureStayDate    = newError(ErrValidation, "stay date cannot be in the future")
	ErrInvalidPrice      = newError(ErrValidation, "price must be positive")
	ErrReviewNotEligible = newError(ErrValidation, "you can only review listings you have completed a stay at")
)

var (
	ErrBookingConflict    = newError(ErrConflict, "listing is already booked for the selected dates")
	ErrDuplicateReview    = newError(ErrConflict, "you have already reviewed this listing")
	ErrListingUnavailable = newError(ErrConflict, "listing is not available for booking")
	ErrUsernameTaken      = newError(ErrConflict, "username is already taken")
	ErrIdempotencyReplay  = newError(ErrConflict, "request with this idempotency key is already in progress")
	ErrIdempotencyReuse   = newError(ErrConflict, "idempotency key was already used for a different booking request")
)

var (
	ErrInvalidTransition = newError(ErrState, "booking status transition is not allowed")
	ErrAlreadyCancelled  = newError(ErrState, "booking is already cancelled")
	ErrAlreadyCompleted  = newError(ErrState, "cannot cancel a completed booking")
	ErrBookingNotActive  = newError(ErrState, "only pending or confirmed bookings can be changed")
)

var ErrInvalidCredentials = newError(ErrUnauthenticated, "invalid username or password")
