package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
)

// AvailabilityService answers date-range questions about a listing without
// changing anything.
type AvailabilityService struct {
	listingRepo ports.ListingRepo
	bookingRepo ports.BookingRepo
}

func NewAvailabilityService(listingRepo ports.ListingRepo, bookingRepo ports.BookingRepo) *AvailabilityService {
	return &AvailabilityService{
		listingRepo: listingRepo,
		bookingRepo: bookingRepo,
	}
}

// IsAvailable reports whether no active booking of the listing other than
// excludeBookingID overlaps [checkIn, checkOut).
func (s *AvailabilityService) IsAvailable(ctx context.Context, listingID string, checkIn, checkOut time.Time, excludeBookingID string) (bool, error) {
	stay, err := domain.NewDateRange(checkIn, checkOut)
	if err != nil {
		return false, err
	}

	if _, err = s.listingRepo.GetByID(ctx, listingID); err != nil {
		return false, fmt.Errorf("get listing: %w", err)
	}

	return s.isFree(ctx, listingID, stay, excludeBookingID)
}

func (s *AvailabilityService) isFree(ctx context.Context, listingID string, stay domain.DateRange, excludeBookingID string) (bool, error) {
	existing, err := s.bookingRepo.ListActiveOverlapping(ctx, listingID, stay)
	if err != nil {
		return false, fmt.Errorf("list bookings: %w", err)
	}

	return domain.FirstConflict(existing, stay, excludeBookingID) == nil, nil
}

// Quote prices a stay at the listing's current nightly rate.
func (s *AvailabilityService) Quote(ctx context.Context, listingID string, checkIn, checkOut time.Time) (*domain.Quote, error) {
	stay, err := domain.NewDateRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	total, err := domain.ComputeTotalPrice(listing.PricePerNight, stay.CheckIn, stay.CheckOut)
	if err != nil {
		return nil, err
	}

	free, err := s.isFree(ctx, listingID, stay, "")
	if err != nil {
		return nil, err
	}

	return &domain.Quote{
		ListingID:     listingID,
		CheckIn:       stay.CheckIn,
		CheckOut:      stay.CheckOut,
		Nights:        stay.Nights(),
		PricePerNight: listing.PricePerNight,
		TotalPrice:    total,
		Available:     free && listing.IsAvailable,
	}, nil
}
