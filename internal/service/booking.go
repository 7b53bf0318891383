package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const stalePendingReason = "check-in date passed without confirmation"

type BookingService struct {
	bookingRepo ports.BookingRepo
	listingRepo ports.ListingRepo
	idempotency ports.IdempotencyStore
	publisher   ports.EventPublisher
	policy      domain.BookingPolicy
	logger      logger.Logger
	now         func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	listingRepo ports.ListingRepo,
	idempotency ports.IdempotencyStore,
	publisher ports.EventPublisher,
	policy domain.BookingPolicy,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		idempotency: idempotency,
		publisher:   publisher,
		policy:      policy,
		logger:      logger,
		now:         time.Now,
	}
}

// Create books a listing for the guest. The availability check and the
// insert happen in one transaction inside the repository; a request carrying
// an idempotency key that was already used returns the original booking.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.GuestID == "" {
		return nil, domain.ErrUnauthenticated
	}
	now := s.now().UTC()

	stay, err := domain.NewDateRange(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}
	if err = domain.ValidateCheckIn(stay.CheckIn, domain.Today(now), s.policy.AllowPastCheckIn); err != nil {
		return nil, err
	}
	if err = domain.ValidateStayLength(stay, s.policy.MaxNights); err != nil {
		return nil, err
	}

	if input.IdempotencyKey != "" {
		existing, err := s.bookingRepo.GetByIdempotencyKey(ctx, input.GuestID, input.IdempotencyKey)
		if err == nil {
			return replay(existing, input, stay)
		}
		if !errors.Is(err, domain.ErrBookingNotFound) {
			return nil, fmt.Errorf("check idempotency key: %w", err)
		}

		lockKey := input.GuestID + ":" + input.IdempotencyKey
		acquired, err := s.idempotency.Acquire(ctx, lockKey)
		if err != nil {
			s.logger.Warn("idempotency lock unavailable",
				logger.String("guest_id", input.GuestID),
				logger.String("error", err.Error()),
			)
		} else if !acquired {
			return nil, domain.ErrIdempotencyReplay
		} else {
			defer s.idempotency.Release(context.WithoutCancel(ctx), lockKey)
		}
	}

	listing, err := s.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if !listing.IsAvailable {
		return nil, domain.ErrListingUnavailable
	}
	if err = domain.ValidateGuests(input.Guests, listing.MaxGuests); err != nil {
		return nil, err
	}

	total, err := bookingPrice(listing, stay, input.TotalPrice)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:              uuid.New().String(),
		ListingID:       listing.ID,
		GuestID:         input.GuestID,
		CheckIn:         stay.CheckIn,
		CheckOut:        stay.CheckOut,
		Guests:          input.Guests,
		TotalPrice:      total,
		Status:          s.policy.InitialStatus(),
		SpecialRequests: input.SpecialRequests,
		IdempotencyKey:  input.IdempotencyKey,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrIdempotencyReplay) && input.IdempotencyKey != "" {
			if existing, getErr := s.bookingRepo.GetByIdempotencyKey(ctx, input.GuestID, input.IdempotencyKey); getErr == nil {
				return replay(existing, input, stay)
			}
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("listing_id", booking.ListingID),
		logger.String("guest_id", booking.GuestID),
		logger.String("status", string(booking.Status)),
	)
	s.publish(ctx, domain.NewBookingEvent(domain.EventBookingCreated, booking, now))

	return booking, nil
}

func replay(existing *domain.Booking, input domain.CreateBookingInput, stay domain.DateRange) (*domain.Booking, error) {
	if !existing.MatchesRequest(input.ListingID, stay, input.Guests) {
		return nil, domain.ErrIdempotencyReuse
	}
	return existing, nil
}

func bookingPrice(listing *domain.Listing, stay domain.DateRange, override *decimal.Decimal) (decimal.Decimal, error) {
	if override == nil {
		return domain.ComputeTotalPrice(listing.PricePerNight, stay.CheckIn, stay.CheckOut)
	}
	if !override.IsPositive() {
		return decimal.Zero, domain.ErrInvalidPrice
	}
	return override.Round(2), nil
}

// Cancel cancels a booking on behalf of its guest or a staff member.
func (s *BookingService) Cancel(ctx context.Context, actor domain.Actor, bookingID, reason string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	from := booking.Status
	now := s.now().UTC()
	if err = booking.Cancel(actor, reason, now); err != nil {
		return nil, err
	}

	if err = s.bookingRepo.UpdateStatus(ctx, booking, from); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("actor_id", actor.UserID),
		logger.String("previous_status", string(from)),
	)
	s.publish(ctx, domain.NewBookingEvent(domain.EventBookingCancelled, booking, now))

	return booking, nil
}

// TransitionStatus moves a booking to next if the status graph allows it.
// It performs no authorization and is meant for trusted callers.
func (s *BookingService) TransitionStatus(ctx context.Context, bookingID string, next domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err = s.transition(ctx, booking, next); err != nil {
		return nil, err
	}

	return booking, nil
}

// UpdateStatus is TransitionStatus for the listing owner or staff.
func (s *BookingService) UpdateStatus(ctx context.Context, actor domain.Actor, bookingID string, next domain.BookingStatus) (*domain.Booking, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, next)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	listing, err := s.listingRepo.GetByID(ctx, booking.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if !listing.CanManage(actor) {
		return nil, domain.ErrForbidden
	}

	if err = s.transition(ctx, booking, next); err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *BookingService) transition(ctx context.Context, booking *domain.Booking, next domain.BookingStatus) error {
	from := booking.Status
	now := s.now().UTC()
	if err := booking.Transition(next, now); err != nil {
		return err
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking, from); err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", booking.ID),
		logger.String("from", string(from)),
		logger.String("to", string(next)),
	)
	s.publish(ctx, domain.NewBookingEvent(domain.EventBookingStatusChanged, booking, now))

	return nil
}

// Reschedule moves an active booking to new dates and re-derives its price.
func (s *BookingService) Reschedule(ctx context.Context, actor domain.Actor, bookingID string, input domain.RescheduleBookingInput) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if actor.UserID != booking.GuestID && !actor.IsStaff {
		return nil, domain.ErrForbidden
	}
	if !booking.Status.IsActive() {
		return nil, domain.ErrBookingNotActive
	}

	now := s.now().UTC()
	stay, err := domain.NewDateRange(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}
	if err = domain.ValidateCheckIn(stay.CheckIn, domain.Today(now), s.policy.AllowPastCheckIn); err != nil {
		return nil, err
	}
	if err = domain.ValidateStayLength(stay, s.policy.MaxNights); err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, booking.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	guests := booking.Guests
	if input.Guests != nil {
		guests = *input.Guests
	}
	if err = domain.ValidateGuests(guests, listing.MaxGuests); err != nil {
		return nil, err
	}

	total, err := domain.ComputeTotalPrice(listing.PricePerNight, stay.CheckIn, stay.CheckOut)
	if err != nil {
		return nil, err
	}

	booking.CheckIn = stay.CheckIn
	booking.CheckOut = stay.CheckOut
	booking.Guests = guests
	booking.TotalPrice = total
	if input.SpecialRequests != nil {
		booking.SpecialRequests = *input.SpecialRequests
	}
	booking.UpdatedAt = now

	if err = s.bookingRepo.Reschedule(ctx, booking); err != nil {
		return nil, fmt.Errorf("reschedule booking: %w", err)
	}

	s.logger.Info("booking rescheduled",
		logger.String("booking_id", booking.ID),
		logger.String("check_in", booking.CheckIn.Format(domain.DateLayout)),
		logger.String("check_out", booking.CheckOut.Format(domain.DateLayout)),
	)
	s.publish(ctx, domain.NewBookingEvent(domain.EventBookingRescheduled, booking, now))

	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.CanView(actor, "") {
		return booking, nil
	}

	listing, err := s.listingRepo.GetByID(ctx, booking.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if !booking.CanView(actor, listing.OwnerID) {
		return nil, domain.ErrForbidden
	}

	return booking, nil
}

// List returns every booking matching filter for staff and only the
// actor's own bookings for everyone else.
func (s *BookingService) List(ctx context.Context, actor domain.Actor, filter domain.BookingFilter) ([]*domain.Booking, error) {
	if !actor.IsStaff {
		filter.GuestID = actor.UserID
	}
	return s.bookingRepo.List(ctx, filter)
}

// CompleteFinished marks confirmed stays whose check-out has passed as
// completed.
func (s *BookingService) CompleteFinished(ctx context.Context) ([]*domain.Booking, error) {
	due, err := s.bookingRepo.ListDueForCompletion(ctx, domain.Today(s.now()))
	if err != nil {
		return nil, fmt.Errorf("list due bookings: %w", err)
	}

	return s.sweep(ctx, due, domain.BookingStatusCompleted, ""), nil
}

// CancelStalePending cancels pending bookings whose check-in passed before
// anyone confirmed them.
func (s *BookingService) CancelStalePending(ctx context.Context) ([]*domain.Booking, error) {
	stale, err := s.bookingRepo.ListExpiredPending(ctx, domain.Today(s.now()))
	if err != nil {
		return nil, fmt.Errorf("list stale bookings: %w", err)
	}

	return s.sweep(ctx, stale, domain.BookingStatusCancelled, stalePendingReason), nil
}

func (s *BookingService) sweep(ctx context.Context, bookings []*domain.Booking, next domain.BookingStatus, reason string) []*domain.Booking {
	var done []*domain.Booking
	for _, b := range bookings {
		from := b.Status
		now := s.now().UTC()
		if err := b.Transition(next, now); err != nil {
			continue
		}
		if next == domain.BookingStatusCancelled {
			b.CancellationReason = reason
		}

		if err := s.bookingRepo.UpdateStatus(ctx, b, from); err != nil {
			s.logger.Error("failed to update booking status",
				logger.String("booking_id", b.ID),
				logger.String("to", string(next)),
				logger.String("error", err.Error()),
			)
			continue
		}

		event := domain.EventBookingStatusChanged
		if next == domain.BookingStatusCancelled {
			event = domain.EventBookingCancelled
		}
		s.publish(ctx, domain.NewBookingEvent(event, b, now))
		done = append(done, b)
	}

	if len(done) > 0 {
		s.logger.Info("bookings swept",
			logger.String("status", string(next)),
			logger.Int("count", len(done)),
		)
	}

	return done
}

func (s *BookingService) publish(ctx context.Context, event domain.Event) {
	go s.publisher.Publish(context.WithoutCancel(ctx), event)
}
