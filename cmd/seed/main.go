// Command seed initialises the current promo month and fills an empty store with launch content.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Stanley42442/OptiSolveLabs/internal/config"
	"github.com/Stanley42442/OptiSolveLabs/internal/logging"
	"github.com/Stanley42442/OptiSolveLabs/internal/model"
	"github.com/Stanley42442/OptiSolveLabs/internal/repository"
	"github.com/Stanley42442/OptiSolveLabs/internal/service"
)

const seedTimeout = 2 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Setup(cfg.Log, os.Stdout)

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	store, closeStore, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to open storage")
	}
	defer closeStore()

	loc, _ := cfg.Promo.Location()
	seeder := service.NewSeeder(store, service.NewPromoService(store, loc))

	var admin *model.User
	if cfg.Seed.HasAdmin() {
		admin = &model.User{Username: cfg.Seed.AdminUsername, Password: cfg.Seed.AdminPassword}
	}

	result, err := seeder.Seed(ctx, time.Now(), admin)
	if err != nil {
		closeStore()
		log.Fatal().Err(err).Msg("seed failed")
	}

	log.Info().
		Int("slots_remaining", result.Promo.SlotsRemaining).
		Bool("promo_active", result.Promo.PromoActive).
		Int("priced_tiers", result.PricedTiers).
		Int("testimonials", result.Testimonials).
		Bool("admin_created", result.AdminCreated).
		Msg("seed complete")
}
