package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
	"github.com/Stanley42442/OptiSolveLabs/internal/service"
)

// PromoRepository provides data access for monthly promo counters using pgx.
type PromoRepository struct {
	pool PoolInterface
}

// NewPromoRepository creates a new PromoRepository with the given pool.
func NewPromoRepository(pool *pgxpool.Pool) *PromoRepository {
	return &PromoRepository{pool: pool}
}

// NewPromoRepositoryWithPool creates a new PromoRepository with a custom pool interface.
// This is primarily used for testing.
func NewPromoRepositoryWithPool(pool PoolInterface) *PromoRepository {
	return &PromoRepository{pool: pool}
}

// GetPromoStatus retrieves the counter of one month.
// Returns nil, nil if the month has no record yet.
func (r *PromoRepository) GetPromoStatus(ctx context.Context, month, year int) (*model.PromoStatus, error) {
	query := `SELECT month, year, slots_remaining, last_updated FROM promo_status WHERE month = $1 AND year = $2`

	var status model.PromoStatus
	err := r.pool.QueryRow(ctx, query, month, year).Scan(
		&status.Month,
		&status.Year,
		&status.SlotsRemaining,
		&status.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promo status %d-%d: %w", year, month, err)
	}
	return &status, nil
}

// CreatePromoStatus inserts the first record of a month.
// Returns service.ErrPromoStatusExists if another request created it first.
func (r *PromoRepository) CreatePromoStatus(ctx context.Context, status *model.PromoStatus) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO promo_status (month, year, slots_remaining, last_updated) VALUES ($1, $2, $3, $4)`,
		status.Month, status.Year, status.SlotsRemaining, status.LastUpdated)
	if err != nil {
		if isUniqueViolation(err) {
			return service.ErrPromoStatusExists
		}
		return fmt.Errorf("insert promo status: %w", err)
	}
	return nil
}

// UpsertPromoStatus writes the slot count of a month, creating the record if needed.
func (r *PromoRepository) UpsertPromoStatus(ctx context.Context, status *model.PromoStatus) error {
	query := `INSERT INTO promo_status (month, year, slots_remaining, last_updated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (month, year) DO UPDATE
		SET slots_remaining = EXCLUDED.slots_remaining, last_updated = EXCLUDED.last_updated`

	_, err := r.pool.Exec(ctx, query, status.Month, status.Year, status.SlotsRemaining, status.LastUpdated)
	if err != nil {
		return fmt.Errorf("upsert promo status: %w", err)
	}
	return nil
}
