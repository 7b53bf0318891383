package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reviewColumns = `id, listing_id, user_id, rating, title, comment, stay_date, is_public,
	owner_response, response_date, created_at, updated_at`

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanReview(s rowScanner) (*domain.Review, error) {
	var rv domain.Review
	err := s.Scan(
		&rv.ID, &rv.ListingID, &rv.UserID, &rv.Rating, &rv.Title, &rv.Comment, &rv.StayDate,
		&rv.IsPublic, &rv.OwnerResponse, &rv.ResponseDate, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if rv.StayDate != nil {
		d := domain.DateOf(*rv.StayDate)
		rv.StayDate = &d
	}
	return &rv, nil
}

func stayDateArg(d *time.Time) any {
	if d == nil {
		return nil
	}
	return dateArg(*d)
}

// Create inserts rv and refreshes the listing's rating aggregate in the same
// transaction.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) (domain.RatingSummary, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.RatingSummary{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, _, err = lockListing(ctx, tx, rv.ListingID); err != nil {
		return domain.RatingSummary{}, err
	}

	query := `INSERT INTO reviews (id, listing_id, user_id, rating, title, comment, stay_date,
			  	is_public, owner_response, response_date, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = tx.ExecContext(
		ctx, query,
		rv.ID, rv.ListingID, rv.UserID, rv.Rating, rv.Title, rv.Comment, stayDateArg(rv.StayDate),
		rv.IsPublic, rv.OwnerResponse, rv.ResponseDate, rv.CreatedAt, rv.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.RatingSummary{}, domain.ErrDuplicateReview
		}
		return domain.RatingSummary{}, fmt.Errorf("insert review: %w", err)
	}

	summary, err := recomputeRating(ctx, tx, rv.ListingID)
	if err != nil {
		return domain.RatingSummary{}, err
	}

	return summary, tx.Commit()
}

// Update writes the editable fields of rv, including visibility, and
// refreshes the aggregate.
func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) (domain.RatingSummary, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.RatingSummary{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, _, err = lockListing(ctx, tx, rv.ListingID); err != nil {
		return domain.RatingSummary{}, err
	}

	query := `UPDATE reviews
			  SET rating = $2, title = $3, comment = $4, is_public = $5, updated_at = $6
			  WHERE id = $1`
	res, err := tx.ExecContext(ctx, query, rv.ID, rv.Rating, rv.Title, rv.Comment, rv.IsPublic, rv.UpdatedAt)
	if err != nil {
		return domain.RatingSummary{}, fmt.Errorf("update review: %w", err)
	}
	if err = expectOneRow(res, domain.ErrReviewNotFound); err != nil {
		return domain.RatingSummary{}, err
	}

	summary, err := recomputeRating(ctx, tx, rv.ListingID)
	if err != nil {
		return domain.RatingSummary{}, err
	}

	return summary, tx.Commit()
}

func (r *ReviewRepository) Delete(ctx context.Context, rv *domain.Review) (domain.RatingSummary, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.RatingSummary{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, _, err = lockListing(ctx, tx, rv.ListingID); err != nil {
		return domain.RatingSummary{}, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, rv.ID)
	if err != nil {
		return domain.RatingSummary{}, fmt.Errorf("delete review: %w", err)
	}
	if err = expectOneRow(res, domain.ErrReviewNotFound); err != nil {
		return domain.RatingSummary{}, err
	}

	summary, err := recomputeRating(ctx, tx, rv.ListingID)
	if err != nil {
		return domain.RatingSummary{}, err
	}

	return summary, tx.Commit()
}

// SetResponse stores the owner's reply. Replies do not affect the aggregate.
func (r *ReviewRepository) SetResponse(ctx context.Context, rv *domain.Review) error {
	query := `UPDATE reviews SET owner_response = $2, response_date = $3, updated_at = $4 WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, rv.ID, rv.OwnerResponse, rv.ResponseDate, rv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("set review response: %w", err)
	}

	return expectOneRow(res, domain.ErrReviewNotFound)
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	rv, err := scanReview(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("scan review: %w", err)
	}

	return rv, nil
}

func (r *ReviewRepository) GetByListingAndUser(ctx context.Context, listingID, userID string) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE listing_id = $1 AND user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, listingID, userID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	rv, err := scanReview(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("scan review: %w", err)
	}

	return rv, nil
}

func (r *ReviewRepository) ListByListing(ctx context.Context, listingID string, onlyPublic bool) ([]*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews
			  WHERE listing_id = $1 AND (is_public OR NOT $2)
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, listingID, onlyPublic)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var res []*domain.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res = append(res, rv)
	}

	return res, rows.Err()
}

// recomputeRating derives the listing aggregate from its reviews and stores
// it. Callers must hold the listing row lock.
func recomputeRating(ctx context.Context, tx txConn, listingID string) (domain.RatingSummary, error) {
	rows, err := tx.QueryContext(ctx, `SELECT rating, is_public FROM reviews WHERE listing_id = $1`, listingID)
	if err != nil {
		return domain.RatingSummary{}, fmt.Errorf("load ratings: %w", err)
	}
	defer rows.Close()

	var reviews []*domain.Review
	for rows.Next() {
		rv := &domain.Review{}
		if err = rows.Scan(&rv.Rating, &rv.IsPublic); err != nil {
			return domain.RatingSummary{}, fmt.Errorf("scan rating: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err = rows.Err(); err != nil {
		return domain.RatingSummary{}, fmt.Errorf("load ratings: %w", err)
	}

	summary := domain.ComputeRating(reviews)

	query := `UPDATE listings SET average_rating = $2, review_count = $3, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, listingID, summary.Average, summary.Count); err != nil {
		return domain.RatingSummary{}, fmt.Errorf("update listing rating: %w", err)
	}

	return summary, nil
}

func expectOneRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
