package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const defaultPassword = "password123"

type UserCreator interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type ListingCreator interface {
	Create(ctx context.Context, actor domain.Actor, input domain.CreateListingInput) (*domain.Listing, error)
}

type BookingCreator interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	TransitionStatus(ctx context.Context, bookingID string, next domain.BookingStatus) (*domain.Booking, error)
	Cancel(ctx context.Context, actor domain.Actor, bookingID, reason string) (*domain.Booking, error)
}

type ReviewCreator interface {
	Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error)
	Respond(ctx context.Context, actor domain.Actor, reviewID, text string) (*domain.Review, error)
}

// Clearer wipes seeded data, keeping staff accounts.
type Clearer interface {
	ClearSeedData(ctx context.Context) error
}

type Options struct {
	Users    int
	Listings int
	Bookings int
	Reviews  int
	Clear    bool
}

type Result struct {
	Users    int
	Listings int
	Bookings int
	Reviews  int
}

type Seeder struct {
	users    UserCreator
	listings ListingCreator
	bookings BookingCreator
	reviews  ReviewCreator
	clearer  Clearer
	logger   logger.Logger
	rnd      *rand.Rand
	now      func() time.Time
}

func New(
	users UserCreator,
	listings ListingCreator,
	bookings BookingCreator,
	reviews ReviewCreator,
	clearer Clearer,
	logger logger.Logger,
) *Seeder {
	return &Seeder{
		users:    users,
		listings: listings,
		bookings: bookings,
		reviews:  reviews,
		clearer:  clearer,
		logger:   logger,
		rnd:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		now:      time.Now,
	}
}

func (s *Seeder) Run(ctx context.Context, opts Options) (Result, error) {
	var res Result

	if opts.Clear {
		s.logger.Info("clearing existing data")
		if err := s.clearer.ClearSeedData(ctx); err != nil {
			return res, fmt.Errorf("clear data: %w", err)
		}
	}

	users, err := s.seedUsers(ctx, opts.Users)
	if err != nil {
		return res, err
	}
	res.Users = len(users)

	listings, err := s.seedListings(ctx, opts.Listings, users)
	if err != nil {
		return res, err
	}
	res.Listings = len(listings)

	bookings, err := s.seedBookings(ctx, opts.Bookings, users, listings)
	if err != nil {
		return res, err
	}
	res.Bookings = len(bookings)

	reviewed, err := s.seedReviews(ctx, opts.Reviews, bookings, listings)
	if err != nil {
		return res, err
	}
	res.Reviews = reviewed

	s.logger.Info("database seeded",
		logger.Int("users", res.Users),
		logger.Int("listings", res.Listings),
		logger.Int("bookings", res.Bookings),
		logger.Int("reviews", res.Reviews),
	)

	return res, nil
}

// seedUsers creates user1..userN, reusing accounts that already exist.
// user1 is created as staff.
func (s *Seeder) seedUsers(ctx context.Context, count int) ([]*domain.User, error) {
	users := make([]*domain.User, 0, count)
	for i := 1; i <= count; i++ {
		username := fmt.Sprintf("user%d", i)

		existing, err := s.users.GetByUsername(ctx, username)
		if err == nil {
			users = append(users, existing)
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("get user %s: %w", username, err)
		}

		u, err := s.users.Create(ctx, domain.CreateUserInput{
			Username: username,
			Email:    username + "@example.com",
			Password: defaultPassword,
			IsStaff:  i == 1,
		})
		if err != nil {
			return nil, fmt.Errorf("create user %s: %w", username, err)
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *Seeder) seedListings(ctx context.Context, count int, owners []*domain.User) ([]*domain.Listing, error) {
	if len(owners) == 0 {
		s.logger.Warn("no users available to own listings")
		return nil, nil
	}

	listings := make([]*domain.Listing, 0, count)
	for range count {
		owner := pick(s.rnd, owners)
		c := pick(s.rnd, cities)
		kind := pick(s.rnd, titleKinds)

		lat := s.rnd.Float64()*180 - 90
		lng := s.rnd.Float64()*360 - 180

		l, err := s.listings.Create(ctx, domain.Actor{UserID: owner.ID, IsStaff: owner.IsStaff}, domain.CreateListingInput{
			OwnerID:       owner.ID,
			Title:         fmt.Sprintf("%s %s in %s", pick(s.rnd, titleWords), kind, c.city),
			Description:   pick(s.rnd, descriptions),
			Address:       fmt.Sprintf("%d %s", s.rnd.IntN(999)+1, pick(s.rnd, streets)),
			City:          c.city,
			Country:       c.country,
			PricePerNight: decimal.NewFromFloat(50 + s.rnd.Float64()*450).Round(2),
			Bedrooms:      s.rnd.IntN(5) + 1,
			Bathrooms:     decimal.NewFromInt(int64(s.rnd.IntN(8) + 2)).Div(decimal.NewFromInt(2)),
			MaxGuests:     s.rnd.IntN(10) + 1,
			PropertyType:  pick(s.rnd, domain.PropertyTypes),
			Amenities:     sample(s.rnd, amenities, s.rnd.IntN(6)+3),
			Latitude:      &lat,
			Longitude:     &lng,
		})
		if err != nil {
			return nil, fmt.Errorf("create listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// seedBookings books random stays between 60 days ago and 60 days ahead and
// walks each one to a target status through the regular state machine.
// Overlapping picks are skipped.
func (s *Seeder) seedBookings(ctx context.Context, count int, guests []*domain.User, listings []*domain.Listing) ([]*domain.Booking, error) {
	if len(guests) == 0 || len(listings) == 0 {
		s.logger.Warn("no listings or users available to create bookings")
		return nil, nil
	}

	today := domain.Today(s.now())
	staff := domain.Actor{UserID: guests[0].ID, IsStaff: true}

	bookings := make([]*domain.Booking, 0, count)
	for range count {
		l := pick(s.rnd, listings)
		guest := pick(s.rnd, guests)
		checkIn := today.AddDate(0, 0, s.rnd.IntN(121)-60)
		checkOut := checkIn.AddDate(0, 0, s.rnd.IntN(14)+1)

		var requests string
		if s.rnd.Float64() < 0.3 {
			requests = pick(s.rnd, specialRequests)
		}

		b, err := s.bookings.Create(ctx, domain.CreateBookingInput{
			ListingID:       l.ID,
			GuestID:         guest.ID,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			Guests:          s.rnd.IntN(l.MaxGuests) + 1,
			SpecialRequests: requests,
		})
		if err != nil {
			if errors.Is(err, domain.ErrBookingConflict) {
				continue
			}
			return nil, fmt.Errorf("create booking: %w", err)
		}

		settled, err := s.settle(ctx, b, targetStatus(s.rnd, b, today), staff)
		if err != nil {
			return nil, fmt.Errorf("settle booking %s: %w", b.ID, err)
		}
		bookings = append(bookings, settled)
	}
	return bookings, nil
}

// targetStatus picks the final status for a freshly created booking. Past
// pending stays are cancelled and stays that have not ended cannot be
// completed.
func targetStatus(rnd *rand.Rand, b *domain.Booking, today time.Time) domain.BookingStatus {
	var status domain.BookingStatus
	switch p := rnd.Float64(); {
	case p < 0.2:
		status = domain.BookingStatusPending
	case p < 0.7:
		status = domain.BookingStatusConfirmed
	case p < 0.9:
		status = domain.BookingStatusCompleted
	default:
		status = domain.BookingStatusCancelled
	}

	if status == domain.BookingStatusPending && b.CheckIn.Before(today) {
		return domain.BookingStatusCancelled
	}
	if status == domain.BookingStatusCompleted && b.CheckOut.After(today) {
		return domain.BookingStatusConfirmed
	}
	return status
}

func (s *Seeder) settle(ctx context.Context, b *domain.Booking, target domain.BookingStatus, staff domain.Actor) (*domain.Booking, error) {
	switch target {
	case domain.BookingStatusCancelled:
		return s.bookings.Cancel(ctx, staff, b.ID, pick(s.rnd, cancellationReasons))
	case domain.BookingStatusConfirmed, domain.BookingStatusCompleted:
		if b.Status == domain.BookingStatusPending {
			confirmed, err := s.bookings.TransitionStatus(ctx, b.ID, domain.BookingStatusConfirmed)
			if err != nil {
				return nil, err
			}
			b = confirmed
		}
		if target == domain.BookingStatusCompleted {
			return s.bookings.TransitionStatus(ctx, b.ID, domain.BookingStatusCompleted)
		}
	}
	return b, nil
}

// seedReviews reviews up to count completed stays, at most one per guest
// and listing.
func (s *Seeder) seedReviews(ctx context.Context, count int, bookings []*domain.Booking, listings []*domain.Listing) (int, error) {
	owners := make(map[string]string, len(listings))
	for _, l := range listings {
		owners[l.ID] = l.OwnerID
	}

	var completed []*domain.Booking
	seen := make(map[string]bool)
	for _, b := range bookings {
		key := b.ListingID + "/" + b.GuestID
		if b.Status != domain.BookingStatusCompleted || seen[key] {
			continue
		}
		seen[key] = true
		completed = append(completed, b)
	}
	if len(completed) == 0 {
		s.logger.Warn("no completed bookings available to create reviews")
		return 0, nil
	}

	s.rnd.Shuffle(len(completed), func(i, j int) { completed[i], completed[j] = completed[j], completed[i] })
	if count < len(completed) {
		completed = completed[:count]
	}

	created := 0
	for _, b := range completed {
		rating := pickRating(s.rnd)
		stayDate := b.CheckIn.AddDate(0, 0, s.rnd.IntN(b.Nights()))
		isPublic := s.rnd.Float64() < 0.9

		r, err := s.reviews.Create(ctx, domain.CreateReviewInput{
			ListingID: b.ListingID,
			UserID:    b.GuestID,
			Rating:    rating,
			Title:     pick(s.rnd, reviewTitles[rating]),
			Comment:   pick(s.rnd, reviewComments[rating]),
			StayDate:  &stayDate,
			IsPublic:  &isPublic,
		})
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateReview) {
				continue
			}
			return created, fmt.Errorf("create review: %w", err)
		}
		created++

		if s.rnd.Float64() < 0.2 {
			owner := domain.Actor{UserID: owners[b.ListingID]}
			if _, err = s.reviews.Respond(ctx, owner, r.ID, pick(s.rnd, ownerResponses)); err != nil {
				return created, fmt.Errorf("respond to review: %w", err)
			}
		}
	}
	return created, nil
}

// pickRating skews towards four and five stars.
func pickRating(rnd *rand.Rand) int {
	switch p := rnd.Float64(); {
	case p < 0.05:
		return 1
	case p < 0.15:
		return 2
	case p < 0.35:
		return 3
	case p < 0.65:
		return 4
	default:
		return 5
	}
}

func pick[T any](rnd *rand.Rand, items []T) T {
	return items[rnd.IntN(len(items))]
}

func sample[T any](rnd *rand.Rand, items []T, n int) []T {
	n = min(n, len(items))
	out := make([]T, 0, n)
	for _, i := range rnd.Perm(len(items))[:n] {
		out = append(out, items[i])
	}
	return out
}
