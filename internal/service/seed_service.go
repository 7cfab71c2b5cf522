package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
)

// SeedResult counts what Seed wrote.
type SeedResult struct {
	Promo        *model.PromoStatusResponse
	PricedTiers  int
	Testimonials int
	AdminCreated bool
}

// Seeder fills an empty store with launch content. Existing data is never overwritten.
type Seeder struct {
	store Store
	promo *PromoService
}

// NewSeeder creates a Seeder that uses promo to initialise the current month.
func NewSeeder(store Store, promo *PromoService) *Seeder {
	return &Seeder{store: store, promo: promo}
}

// Seed writes the current month's promo record, the catalog's default pricing for
// services without tiers, and the default testimonials that are missing.
// When admin is non-nil and its username is free, the user is created too.
func (s *Seeder) Seed(ctx context.Context, now time.Time, admin *model.User) (*SeedResult, error) {
	result := &SeedResult{}

	status, err := s.promo.GetStatus(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("seed promo status: %w", err)
	}
	result.Promo = status
	log.Info().
		Int("month", status.Month).
		Int("year", status.Year).
		Int("slots_remaining", status.SlotsRemaining).
		Msg("promo status ready")

	for _, svc := range model.Catalog {
		existing, err := s.store.GetServicePricing(ctx, svc.ID)
		if err != nil {
			return nil, fmt.Errorf("seed pricing of %s: %w", svc.ID, err)
		}
		if len(existing) > 0 {
			continue
		}
		saved, err := s.store.ReplaceServicePricing(ctx, svc.ID, svc.Pricing)
		if err != nil {
			return nil, fmt.Errorf("seed pricing of %s: %w", svc.ID, err)
		}
		result.PricedTiers += len(saved)
	}

	for i, t := range model.DefaultTestimonials {
		// each entry a minute older than the previous, so newest-first listing keeps this order
		seeded := &model.Testimonial{
			ID:        t.ID,
			Name:      t.Name,
			Location:  t.Location,
			Rating:    *t.Rating,
			Quote:     t.Quote,
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		}
		err := s.store.CreateTestimonial(ctx, seeded)
		if errors.Is(err, ErrTestimonialExists) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("seed testimonial %s: %w", t.ID, err)
		}
		result.Testimonials++
	}

	if admin != nil {
		err := s.store.CreateUser(ctx, admin)
		switch {
		case errors.Is(err, ErrUsernameTaken):
		case err != nil:
			return nil, fmt.Errorf("seed admin user: %w", err)
		default:
			result.AdminCreated = true
		}
	}

	return result, nil
}
