package domain

import "time"

type EventType string

const (
	EventBookingCreated       EventType = "booking.created"
	EventBookingStatusChanged EventType = "booking.status_changed"
	EventBookingCancelled     EventType = "booking.cancelled"
	EventBookingRescheduled   EventType = "booking.rescheduled"
	EventReviewCreated        EventType = "review.created"
	EventReviewDeleted        EventType = "review.deleted"
)

// Event is a fact about a booking or review, published after the write
// that produced it has committed.
type Event struct {
	Type       EventType     `json:"type"`
	OccurredAt time.Time     `json:"occurred_at"`
	ListingID  string        `json:"listing_id"`
	UserID     string        `json:"user_id"`
	BookingID  string        `json:"booking_id,omitempty"`
	ReviewID   string        `json:"review_id,omitempty"`
	Status     BookingStatus `json:"status,omitempty"`
	CheckIn    string        `json:"check_in,omitempty"`
	CheckOut   string        `json:"check_out,omitempty"`
	Rating     int           `json:"rating,omitempty"`
}

func NewBookingEvent(t EventType, b *Booking, at time.Time) Event {
	return Event{
		Type:       t,
		OccurredAt: at,
		ListingID:  b.ListingID,
		UserID:     b.GuestID,
		BookingID:  b.ID,
		Status:     b.Status,
		CheckIn:    b.CheckIn.Format(DateLayout),
		CheckOut:   b.CheckOut.Format(DateLayout),
	}
}

func NewReviewEvent(t EventType, r *Review, at time.Time) Event {
	return Event{
		Type:       t,
		OccurredAt: at,
		ListingID:  r.ListingID,
		UserID:     r.UserID,
		ReviewID:   r.ID,
		Rating:     r.Rating,
	}
}
