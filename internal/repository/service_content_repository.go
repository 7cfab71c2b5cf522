package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
)

// ServiceContentRepository provides data access for per-service images and pricing tiers.
type ServiceContentRepository struct {
	pool TxPoolInterface
}

// NewServiceContentRepository creates a new ServiceContentRepository with the given pool.
func NewServiceContentRepository(pool *pgxpool.Pool) *ServiceContentRepository {
	return &ServiceContentRepository{pool: pool}
}

// NewServiceContentRepositoryWithPool creates a new ServiceContentRepository with a custom pool interface.
func NewServiceContentRepositoryWithPool(pool TxPoolInterface) *ServiceContentRepository {
	return &ServiceContentRepository{pool: pool}
}

// GetServiceImages returns nil, nil if the service has no images saved.
func (r *ServiceContentRepository) GetServiceImages(ctx context.Context, serviceID string) (*model.ServiceImages, error) {
	query := `SELECT service_id, before_image_url, after_image_url, updated_at FROM service_images WHERE service_id = $1`

	var images model.ServiceImages
	err := r.pool.QueryRow(ctx, query, serviceID).Scan(
		&images.ServiceID,
		&images.BeforeImageURL,
		&images.AfterImageURL,
		&images.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service images %s: %w", serviceID, err)
	}
	return &images, nil
}

// SaveServiceImages upserts the images of images.ServiceID and returns the stored row.
func (r *ServiceContentRepository) SaveServiceImages(ctx context.Context, images *model.ServiceImages) (*model.ServiceImages, error) {
	query := `INSERT INTO service_images (service_id, before_image_url, after_image_url, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (service_id) DO UPDATE SET
			before_image_url = EXCLUDED.before_image_url,
			after_image_url = EXCLUDED.after_image_url,
			updated_at = EXCLUDED.updated_at
		RETURNING service_id, before_image_url, after_image_url, updated_at`

	var saved model.ServiceImages
	err := r.pool.QueryRow(ctx, query, images.ServiceID, images.BeforeImageURL, images.AfterImageURL).Scan(
		&saved.ServiceID,
		&saved.BeforeImageURL,
		&saved.AfterImageURL,
		&saved.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("save service images %s: %w", images.ServiceID, err)
	}
	return &saved, nil
}

// GetServicePricing returns the tiers of a service in the order they were submitted.
// On success, returns an empty slice (not nil) when no tiers exist.
func (r *ServiceContentRepository) GetServicePricing(ctx context.Context, serviceID string) ([]model.PricingTier, error) {
	query := `SELECT tier_name, original_price, delivery_time, features
		FROM service_pricing WHERE service_id = $1 ORDER BY position`

	rows, err := r.pool.Query(ctx, query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("get service pricing %s: %w", serviceID, err)
	}
	defer rows.Close()

	tiers := []model.PricingTier{}
	for rows.Next() {
		var (
			tier     model.PricingTier
			price    int
			features string
		)
		if err := rows.Scan(&tier.TierName, &price, &tier.DeliveryTime, &features); err != nil {
			return nil, fmt.Errorf("scan pricing tier: %w", err)
		}
		if err := json.Unmarshal([]byte(features), &tier.Features); err != nil {
			return nil, fmt.Errorf("decode features of tier %s: %w", tier.TierName, err)
		}
		if tier.Features == nil {
			tier.Features = []string{}
		}
		tier.OriginalPrice = &price
		tiers = append(tiers, tier)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pricing rows: %w", err)
	}
	return tiers, nil
}

// ReplaceServicePricing deletes every tier of a service and inserts tiers in one transaction.
// A failure part way leaves the previous tiers in place. Replacements of the same service are
// serialised by a transaction-scoped advisory lock, so concurrent writers cannot collide on position.
func (r *ServiceContentRepository) ReplaceServicePricing(ctx context.Context, serviceID string, tiers []model.PricingTier) ([]model.PricingTier, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, serviceID); err != nil {
		return nil, fmt.Errorf("lock pricing of %s: %w", serviceID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM service_pricing WHERE service_id = $1`, serviceID); err != nil {
		return nil, fmt.Errorf("delete pricing of %s: %w", serviceID, err)
	}

	insert := `INSERT INTO service_pricing (service_id, position, tier_name, original_price, delivery_time, features)
		VALUES ($1, $2, $3, $4, $5, $6)`

	saved := make([]model.PricingTier, 0, len(tiers))
	for i, tier := range tiers {
		features := tier.Features
		if features == nil {
			features = []string{}
		}
		encoded, err := json.Marshal(features)
		if err != nil {
			return nil, fmt.Errorf("encode features of tier %s: %w", tier.TierName, err)
		}
		if _, err := tx.Exec(ctx, insert, serviceID, i, tier.TierName, tier.Price(), tier.DeliveryTime, string(encoded)); err != nil {
			return nil, fmt.Errorf("insert pricing tier %s: %w", tier.TierName, err)
		}

		price := tier.Price()
		saved = append(saved, model.PricingTier{
			TierName:      tier.TierName,
			OriginalPrice: &price,
			DeliveryTime:  tier.DeliveryTime,
			Features:      append([]string{}, features...),
		})
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit pricing of %s: %w", serviceID, err)
	}
	return saved, nil
}
