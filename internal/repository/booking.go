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

const bookingColumns = `id, listing_id, guest_id, check_in, check_out, guests, total_price, status,
	special_requests, cancelled_at, cancellation_reason, COALESCE(idempotency_key, ''),
	created_at, updated_at`

const (
	pgUniqueViolation     = "23505"
	pgExclusionViolation  = "23P01"
	pgForeignKeyViolation = "23503"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanBooking(s rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := s.Scan(
		&b.ID, &b.ListingID, &b.GuestID, &b.CheckIn, &b.CheckOut, &b.Guests, &b.TotalPrice,
		&b.Status, &b.SpecialRequests, &b.CancelledAt, &b.CancellationReason,
		&b.IdempotencyKey, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.CheckIn = domain.DateOf(b.CheckIn)
	b.CheckOut = domain.DateOf(b.CheckOut)
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func dateArg(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func mapBookingWriteErr(err error) error {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgExclusionViolation:
		return domain.ErrBookingConflict
	case pgUniqueViolation:
		return domain.ErrIdempotencyReplay
	case pgForeignKeyViolation:
		return domain.ErrUserNotFound
	}
	return err
}

// Create inserts b after checking, under a lock on the listing row, that the
// listing accepts bookings, has room for b.Guests and has no active booking
// overlapping b's stay. The exclusion constraint on bookings backs this up.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = checkBookable(ctx, tx, b, ""); err != nil {
		return err
	}

	query := `INSERT INTO bookings (id, listing_id, guest_id, check_in, check_out, guests, total_price,
			  	status, special_requests, cancelled_at, cancellation_reason, idempotency_key,
			  	created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.ListingID, b.GuestID, dateArg(b.CheckIn), dateArg(b.CheckOut), b.Guests, b.TotalPrice,
		b.Status, b.SpecialRequests, b.CancelledAt, b.CancellationReason, nullString(b.IdempotencyKey),
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if mapped := mapBookingWriteErr(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

// Reschedule moves an active booking to new dates, excluding the booking
// itself from the overlap check.
func (r *BookingRepository) Reschedule(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = checkBookable(ctx, tx, b, b.ID); err != nil {
		return err
	}

	query := `UPDATE bookings
			  SET check_in = $2, check_out = $3, guests = $4, total_price = $5,
			      special_requests = $6, updated_at = $7
			  WHERE id = $1 AND status = ANY($8)`
	res, err := tx.ExecContext(
		ctx, query,
		b.ID, dateArg(b.CheckIn), dateArg(b.CheckOut), b.Guests, b.TotalPrice,
		b.SpecialRequests, b.UpdatedAt, pq.Array(domain.ActiveStatuses),
	)
	if err != nil {
		if mapped := mapBookingWriteErr(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("reschedule booking: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrBookingNotActive
	}

	return tx.Commit()
}

func checkBookable(ctx context.Context, tx txConn, b *domain.Booking, excludeID string) error {
	maxGuests, available, err := lockListing(ctx, tx, b.ListingID)
	if err != nil {
		return err
	}
	if !available {
		return domain.ErrListingUnavailable
	}
	if err = domain.ValidateGuests(b.Guests, maxGuests); err != nil {
		return err
	}

	stay := b.Range()
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE listing_id = $1 AND status = ANY($2) AND check_out > $3 AND check_in < $4`
	rows, err := tx.QueryContext(
		ctx, query, b.ListingID, pq.Array(domain.ActiveStatuses),
		dateArg(stay.CheckIn), dateArg(stay.CheckOut),
	)
	if err != nil {
		return fmt.Errorf("load overlapping bookings: %w", err)
	}
	existing, err := scanBookings(rows)
	if err != nil {
		return err
	}

	if domain.FirstConflict(existing, stay, excludeID) != nil {
		return domain.ErrBookingConflict
	}

	return nil
}

// UpdateStatus persists the status fields of b if the stored status still
// equals from.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *domain.Booking, from domain.BookingStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $2, cancelled_at = $3, cancellation_reason = $4, updated_at = $5
			  WHERE id = $1 AND status = $6`
	res, err := tx.ExecContext(
		ctx, query,
		b.ID, b.Status, b.CancelledAt, b.CancellationReason, b.UpdatedAt, from,
	)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n == 0 {
		// Either the booking is gone or someone moved it first.
		var current domain.BookingStatus
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, b.ID).Scan(&current); scanErr != nil {
			return domain.ErrBookingNotFound
		}
		return domain.StaleStatusError(current)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) GetByIdempotencyKey(ctx context.Context, guestID, key string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE guest_id = $1 AND idempotency_key = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, guestID, key)
	if err != nil {
		return nil, fmt.Errorf("get booking by idempotency key: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	var (
		conds []string
		args  []any
	)
	where := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.GuestID != "" {
		where("guest_id = $%d", filter.GuestID)
	}
	if filter.ListingID != "" {
		where("listing_id = $%d", filter.ListingID)
	}
	if filter.Status != "" {
		where("status = $%d", filter.Status)
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY check_in DESC, created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return scanBookings(rows)
}

// ListActiveOverlapping returns the active bookings of a listing whose stay
// intersects r.
func (r *BookingRepository) ListActiveOverlapping(ctx context.Context, listingID string, rng domain.DateRange) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE listing_id = $1 AND status = ANY($2) AND check_out > $3 AND check_in < $4
			  ORDER BY check_in`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query, listingID, pq.Array(domain.ActiveStatuses),
		dateArg(rng.CheckIn), dateArg(rng.CheckOut),
	)
	if err != nil {
		return nil, fmt.Errorf("list overlapping bookings: %w", err)
	}

	return scanBookings(rows)
}

func (r *BookingRepository) ListByListingAndGuest(ctx context.Context, listingID, guestID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE listing_id = $1 AND guest_id = $2
			  ORDER BY check_out DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, listingID, guestID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by listing and guest: %w", err)
	}

	return scanBookings(rows)
}

// ListDueForCompletion returns confirmed bookings whose check-out is on or
// before today.
func (r *BookingRepository) ListDueForCompletion(ctx context.Context, today time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE status = $1 AND check_out <= $2
			  ORDER BY check_out`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusConfirmed, dateArg(today))
	if err != nil {
		return nil, fmt.Errorf("list bookings due for completion: %w", err)
	}

	return scanBookings(rows)
}

// ListExpiredPending returns pending bookings whose check-in already passed.
func (r *BookingRepository) ListExpiredPending(ctx context.Context, today time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE status = $1 AND check_in < $2
			  ORDER BY check_in`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusPending, dateArg(today))
	if err != nil {
		return nil, fmt.Errorf("list expired pending bookings: %w", err)
	}

	return scanBookings(rows)
}
