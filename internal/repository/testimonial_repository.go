package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
	"github.com/Stanley42442/OptiSolveLabs/internal/service"
)

// TestimonialRepository provides data access for testimonials using pgx.
type TestimonialRepository struct {
	pool PoolInterface
}

// NewTestimonialRepository creates a new TestimonialRepository with the given pool.
func NewTestimonialRepository(pool *pgxpool.Pool) *TestimonialRepository {
	return &TestimonialRepository{pool: pool}
}

// NewTestimonialRepositoryWithPool creates a new TestimonialRepository with a custom pool interface.
// This is primarily used for testing.
func NewTestimonialRepositoryWithPool(pool PoolInterface) *TestimonialRepository {
	return &TestimonialRepository{pool: pool}
}

// ListTestimonials returns every testimonial, newest first.
// On success, returns an empty slice (not nil) when none exist.
func (r *TestimonialRepository) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	query := `SELECT id, name, location, rating, quote, created_at FROM testimonials ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	list := []model.Testimonial{}
	for rows.Next() {
		var t model.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Location, &t.Rating, &t.Quote, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		list = append(list, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate testimonial rows: %w", err)
	}
	return list, nil
}

// CreateTestimonial inserts a testimonial.
// Returns service.ErrTestimonialExists if the id is already used.
func (r *TestimonialRepository) CreateTestimonial(ctx context.Context, t *model.Testimonial) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO testimonials (id, name, location, rating, quote, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.Name, t.Location, t.Rating, t.Quote, t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return service.ErrTestimonialExists
		}
		return fmt.Errorf("insert testimonial: %w", err)
	}
	return nil
}

// DeleteTestimonial removes a testimonial by id.
// Returns service.ErrTestimonialNotFound if no row was deleted.
func (r *TestimonialRepository) DeleteTestimonial(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrTestimonialNotFound
	}
	return nil
}
