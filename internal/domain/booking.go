package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusNoShow    BookingStatus = "NO_SHOW"
)

// ActiveStatuses are the statuses that hold a listing's dates.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled, BookingStatusCompleted, BookingStatusNoShow},
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled,
		BookingStatusCompleted, BookingStatusNoShow:
		return true
	}
	return false
}

func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

func (s BookingStatus) IsTerminal() bool {
	return s.Valid() && len(bookingTransitions[s]) == 0
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID                 string          `json:"id"`
	ListingID          string          `json:"listing_id"`
	GuestID            string          `json:"guest_id"`
	CheckIn            time.Time       `json:"check_in"`
	CheckOut           time.Time       `json:"check_out"`
	Guests             int             `json:"guests"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	Status             BookingStatus   `json:"status"`
	SpecialRequests    string          `json:"special_requests"`
	CancelledAt        *time.Time      `json:"cancelled_at"`
	CancellationReason string          `json:"cancellation_reason"`
	IdempotencyKey     string          `json:"-"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func (b *Booking) Range() DateRange {
	return DateRange{CheckIn: DateOf(b.CheckIn), CheckOut: DateOf(b.CheckOut)}
}

// MatchesRequest reports whether b is what a request for the same listing,
// stay and party size would have created.
func (b *Booking) MatchesRequest(listingID string, stay DateRange, guests int) bool {
	r := b.Range()
	return b.ListingID == listingID && b.Guests == guests &&
		r.CheckIn.Equal(stay.CheckIn) && r.CheckOut.Equal(stay.CheckOut)
}

func (b *Booking) Nights() int {
	return b.Range().Nights()
}

// Transition moves the booking along an allowed edge of the status graph.
// Entering CANCELLED stamps the cancellation time.
func (b *Booking) Transition(next BookingStatus, at time.Time) error {
	if !b.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.Status = next
	b.UpdatedAt = at
	if next == BookingStatusCancelled {
		b.CancelledAt = &at
	}
	return nil
}

// Cancel cancels the booking on behalf of actor. Only the guest or staff
// may cancel.
func (b *Booking) Cancel(actor Actor, reason string, at time.Time) error {
	if actor.UserID != b.GuestID && !actor.IsStaff {
		return ErrForbidden
	}

	if err := SettledError(b.Status); err != nil {
		return err
	}

	if err := b.Transition(BookingStatusCancelled, at); err != nil {
		return err
	}
	b.CancellationReason = reason
	return nil
}

// SettledError returns the error for acting on a booking that already
// reached a final cancelled or completed state, or nil otherwise.
func SettledError(s BookingStatus) error {
	switch s {
	case BookingStatusCancelled:
		return ErrAlreadyCancelled
	case BookingStatusCompleted:
		return ErrAlreadyCompleted
	}
	return nil
}

// StaleStatusError explains why a guarded status write found the booking in
// current instead of the expected status.
func StaleStatusError(current BookingStatus) error {
	if err := SettledError(current); err != nil {
		return err
	}
	return fmt.Errorf("%w: booking is %s", ErrInvalidTransition, current)
}

// CanView reports whether actor may read the booking: its guest, the
// listing owner or staff.
func (b *Booking) CanView(actor Actor, listingOwnerID string) bool {
	return actor.IsStaff || actor.UserID == b.GuestID || actor.UserID == listingOwnerID
}

type BookingPolicy struct {
	AutoConfirm      bool
	AllowPastCheckIn bool
	MaxNights        int
}

func (p BookingPolicy) InitialStatus() BookingStatus {
	if p.AutoConfirm {
		return BookingStatusConfirmed
	}
	return BookingStatusPending
}

func ValidateGuests(guests, maxGuests int) error {
	if guests < 1 {
		return newError(ErrValidation, "at least one guest is required")
	}
	if guests > maxGuests {
		return ErrCapacityExceeded
	}
	return nil
}

// FirstConflict returns the first active booking in existing whose stay
// overlaps r, ignoring excludeID. It returns nil when the dates are free.
func FirstConflict(existing []*Booking, r DateRange, excludeID string) *Booking {
	for _, b := range existing {
		if b.ID == excludeID || !b.Status.IsActive() {
			continue
		}
		if b.Range().Overlaps(r) {
			return b
		}
	}
	return nil
}

type CreateBookingInput struct {
	ListingID       string
	GuestID         string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	SpecialRequests string
	TotalPrice      *decimal.Decimal
	IdempotencyKey  string
}

type RescheduleBookingInput struct {
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          *int
	SpecialRequests *string
}

type BookingFilter struct {
	GuestID   string
	ListingID string
	Status    BookingStatus
}
