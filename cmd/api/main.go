package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Stanley42442/OptiSolveLabs/internal/config"
	"github.com/Stanley42442/OptiSolveLabs/internal/handler"
	"github.com/Stanley42442/OptiSolveLabs/internal/logging"
	"github.com/Stanley42442/OptiSolveLabs/internal/notify"
	"github.com/Stanley42442/OptiSolveLabs/internal/repository"
	"github.com/Stanley42442/OptiSolveLabs/internal/service"
	"github.com/Stanley42442/OptiSolveLabs/internal/validator"
	"github.com/Stanley42442/OptiSolveLabs/pkg/objectstore"
)

func main() {
	// Load configuration first
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Setup(cfg.Log, os.Stdout)

	ctx := context.Background()

	store, closeStore, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to open storage")
	}

	// Validated by config.Load
	loc, _ := cfg.Promo.Location()

	promoService := service.NewPromoService(store, loc)
	contentService := service.NewContentService(store, store, store, promoService)
	contactService := service.NewContactService(cfg.Contact.NotifyTimeout, contactNotifiers(cfg)...)
	imageService := service.NewImageService(imageUploader(ctx, cfg))

	app := handler.NewApp(handler.AppConfig{
		AppName:          "OptiSolve Labs API",
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
		BodyLimit:        cfg.Server.BodyLimitMB * 1024 * 1024,
		AccessLog:        true,
	}, handler.Dependencies{
		Promo:       promoService,
		Content:     contentService,
		Contact:     contactService,
		Images:      imageService,
		Store:       store,
		Validator:   validator.New(),
		AdminSecret: cfg.Admin.Secret,
	})

	// Start server with graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("storage", cfg.Storage.Driver).Msg("starting server")
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
	log.Info().Int("timeout_seconds", cfg.Server.ShutdownTimeout).Msg("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	// Let background contact notifications finish; each is bounded by the notify timeout
	contactService.Wait()

	// Release storage after in-flight requests finish (even if shutdown timed out)
	closeStore()
	log.Info().Msg("server stopped")
}

// contactNotifiers returns a notifier for every fully configured provider.
func contactNotifiers(cfg *config.Config) []service.Notifier {
	var notifiers []service.Notifier

	if cfg.SendGrid.Enabled() {
		notifiers = append(notifiers, notify.NewEmailNotifier(
			cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName, cfg.SendGrid.ToEmail,
		))
	} else {
		log.Warn().Msg("SENDGRID_API_KEY or CONTACT_EMAIL_TO not set, contact e-mails disabled")
	}

	if cfg.Twilio.Enabled() {
		notifiers = append(notifiers, notify.NewWhatsAppNotifier(
			cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.WhatsAppFrom, cfg.Twilio.WhatsAppTo,
		))
	}

	return notifiers
}

// imageUploader returns the S3 uploader, or nil when uploads are not configured.
func imageUploader(ctx context.Context, cfg *config.Config) service.Uploader {
	if !cfg.S3.Enabled() {
		log.Warn().Msg("S3_BUCKET not set, image uploads disabled")
		return nil
	}

	s3Store, err := objectstore.NewS3Store(ctx, objectstore.Options{
		Region:          cfg.S3.Region,
		Bucket:          cfg.S3.Bucket,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		PublicBaseURL:   cfg.S3.PublicBaseURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure S3 uploads")
	}
	return s3Store
}
