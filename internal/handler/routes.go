package handler

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// AppConfig holds the HTTP settings of NewApp.
type AppConfig struct {
	AppName          string
	CORSAllowOrigins string
	BodyLimit        int // bytes; zero keeps fiber's default
	AccessLog        bool
}

// Dependencies are the services the routes are served by.
type Dependencies struct {
	Promo       PromoServiceInterface
	Content     ContentServiceInterface
	Contact     ContactServiceInterface
	Images      ImageServiceInterface
	Store       Pinger
	Validator   *validator.Validate
	AdminSecret string
}

// NewApp builds the fiber app with middleware and every route registered.
func NewApp(cfg AppConfig, deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		BodyLimit:    cfg.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if cfg.AccessLog {
		app.Use(logger.New())
	}

	origins := cfg.CORSAllowOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodDelete, fiber.MethodOptions}, ","),
		AllowHeaders: strings.Join([]string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, AdminSecretHeader}, ","),
	}))

	RegisterRoutes(app, deps)
	return app
}

// RegisterRoutes mounts the health check and the /api routes on app.
// Content reads are public; every mutation except contact and testimonial submission requires the admin secret.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	admin := RequireAdmin(deps.AdminSecret)

	health := NewHealthHandler(deps.Store)
	promo := NewPromoHandler(deps.Promo, deps.Validator)
	content := NewContentHandler(deps.Content, deps.Validator)
	contact := NewContactHandler(deps.Contact, deps.Validator)
	uploads := NewUploadHandler(deps.Images)

	app.Get("/health", health.Check)

	api := app.Group("/api")

	api.Get("/promo/status", promo.GetStatus)
	api.Post("/promo/update-slots", admin, promo.UpdateSlots)

	api.Post("/contact", contact.Submit)

	api.Get("/services", content.ListServices)
	api.Get("/services/:serviceId", content.GetServiceDetail)

	api.Get("/testimonials", content.ListTestimonials)
	api.Post("/testimonials", content.CreateTestimonial)

	api.Get("/admin/contact-info", content.GetContactInfo)
	api.Post("/admin/contact-info", admin, content.SaveContactInfo)
	api.Get("/admin/about-info", content.GetAboutInfo)
	api.Post("/admin/about-info", admin, content.SaveAboutInfo)
	api.Get("/admin/home-info", content.GetHomeInfo)
	api.Post("/admin/home-info", admin, content.SaveHomeInfo)
	api.Get("/admin/service-images/:serviceId", content.GetServiceImages)
	api.Post("/admin/service-images/:serviceId", admin, content.SaveServiceImages)
	api.Get("/admin/service-pricing/:serviceId", content.GetServicePricing)
	api.Post("/admin/service-pricing/:serviceId", admin, content.ReplaceServicePricing)
	api.Delete("/admin/testimonials/:id", admin, content.DeleteTestimonial)
	api.Post("/admin/uploads", admin, uploads.Upload)
}
