package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Stanley42442/OptiSolveLabs/internal/service"
)

var _ service.Store = (*PostgresStore)(nil)

// StorePool is everything PostgresStore needs from a connection pool.
type StorePool interface {
	TxPoolInterface
	Ping(ctx context.Context) error
}

// PostgresStore is the authoritative storage adapter, backed by PostgreSQL.
type PostgresStore struct {
	*PromoRepository
	*SiteContentRepository
	*ServiceContentRepository
	*TestimonialRepository
	*UserRepository

	pool StorePool
}

// NewPostgresStore creates a PostgresStore over a pgx pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		PromoRepository:          NewPromoRepository(pool),
		SiteContentRepository:    NewSiteContentRepository(pool),
		ServiceContentRepository: NewServiceContentRepository(pool),
		TestimonialRepository:    NewTestimonialRepository(pool),
		UserRepository:           NewUserRepository(pool),
		pool:                     pool,
	}
}

// NewPostgresStoreWithPool creates a PostgresStore with a custom pool interface.
func NewPostgresStoreWithPool(pool StorePool) *PostgresStore {
	return &PostgresStore{
		PromoRepository:          NewPromoRepositoryWithPool(pool),
		SiteContentRepository:    NewSiteContentRepositoryWithPool(pool),
		ServiceContentRepository: NewServiceContentRepositoryWithPool(pool),
		TestimonialRepository:    NewTestimonialRepositoryWithPool(pool),
		UserRepository:           NewUserRepositoryWithPool(pool),
		pool:                     pool,
	}
}

// Ping checks that the database is reachable.
func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
