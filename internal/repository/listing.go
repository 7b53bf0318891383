package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const listingColumns = `id, owner_id, title, description, address, city, country,
	price_per_night, bedrooms, bathrooms, max_guests, property_type, amenities,
	is_available, latitude, longitude, average_rating, review_count, created_at, updated_at`

type ListingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewListingRepo(db *dbpg.DB) *ListingRepository {
	return &ListingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// txConn is the subset of a transaction the locked write paths use.
type txConn interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func scanListing(s rowScanner) (*domain.Listing, error) {
	var l domain.Listing
	err := s.Scan(
		&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Address, &l.City, &l.Country,
		&l.PricePerNight, &l.Bedrooms, &l.Bathrooms, &l.MaxGuests, &l.PropertyType,
		pq.Array(&l.Amenities), &l.IsAvailable, &l.Latitude, &l.Longitude,
		&l.AverageRating, &l.ReviewCount, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func amenitiesArg(a []string) any {
	if a == nil {
		a = []string{}
	}
	return pq.Array(a)
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (id, owner_id, title, description, address, city, country,
			  	price_per_night, bedrooms, bathrooms, max_guests, property_type, amenities,
			  	is_available, latitude, longitude, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		l.ID, l.OwnerID, l.Title, l.Description, l.Address, l.City, l.Country,
		l.PricePerNight, l.Bedrooms, l.Bathrooms, l.MaxGuests, l.PropertyType,
		amenitiesArg(l.Amenities), l.IsAvailable, l.Latitude, l.Longitude,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert listing: %w", err)
	}

	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("scan listing: %w", err)
	}

	return l, nil
}

func (r *ListingRepository) List(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error) {
	var (
		conds []string
		args  []any
	)
	where := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.City != "" {
		where("city ILIKE $%d", filter.City)
	}
	if filter.Country != "" {
		where("country ILIKE $%d", filter.Country)
	}
	if filter.PropertyType != "" {
		where("property_type = $%d", filter.PropertyType)
	}
	if filter.MinGuests > 0 {
		where("max_guests >= $%d", filter.MinGuests)
	}
	if filter.OwnerID != "" {
		where("owner_id = $%d", filter.OwnerID)
	}
	if filter.OnlyAvailable {
		conds = append(conds, "is_available")
	}

	query := `SELECT ` + listingColumns + ` FROM listings`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}

// Update writes the descriptive fields of l. The rating aggregate is owned
// by the review writes and is left untouched.
func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) error {
	query := `UPDATE listings
			  SET title = $2, description = $3, address = $4, city = $5, country = $6,
			      price_per_night = $7, bedrooms = $8, bathrooms = $9, max_guests = $10,
			      property_type = $11, amenities = $12, is_available = $13,
			      latitude = $14, longitude = $15, updated_at = $16
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		l.ID, l.Title, l.Description, l.Address, l.City, l.Country,
		l.PricePerNight, l.Bedrooms, l.Bathrooms, l.MaxGuests,
		l.PropertyType, amenitiesArg(l.Amenities), l.IsAvailable,
		l.Latitude, l.Longitude, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("listing rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrListingNotFound
	}

	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("listing rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrListingNotFound
	}

	return nil
}

// lockListing takes a row lock on the listing for the rest of tx and
// returns its capacity and availability flag.
func lockListing(ctx context.Context, tx txConn, id string) (maxGuests int, available bool, err error) {
	query := `SELECT max_guests, is_available FROM listings WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, query, id).Scan(&maxGuests, &available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, domain.ErrListingNotFound
		}
		return 0, false, fmt.Errorf("lock listing: %w", err)
	}
	return maxGuests, available, nil
}
