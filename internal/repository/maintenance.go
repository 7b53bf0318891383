package repository

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
)

type MaintenanceRepository struct {
	db *dbpg.DB
}

func NewMaintenanceRepo(db *dbpg.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// ClearSeedData removes reviews, bookings, listings and non-staff users in
// one transaction.
func (r *MaintenanceRepository) ClearSeedData(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, query := range []string{
		`DELETE FROM reviews`,
		`DELETE FROM bookings`,
		`DELETE FROM listings`,
		`DELETE FROM users WHERE is_staff = FALSE`,
	} {
		if _, err = tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("exec %q: %w", query, err)
		}
	}

	return tx.Commit()
}
