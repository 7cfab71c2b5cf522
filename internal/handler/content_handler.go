package handler

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
	"github.com/Stanley42442/OptiSolveLabs/internal/service"
)

// ContentServiceInterface defines the interface for site content business logic.
type ContentServiceInterface interface {
	GetContactInfo(ctx context.Context) (*model.ContactInfo, error)
	SaveContactInfo(ctx context.Context, info *model.ContactInfo) (*model.ContactInfo, error)
	GetAboutInfo(ctx context.Context) (*model.AboutInfo, error)
	SaveAboutInfo(ctx context.Context, info *model.AboutInfo) (*model.AboutInfo, error)
	GetHomeInfo(ctx context.Context) (*model.HomeInfo, error)
	SaveHomeInfo(ctx context.Context, info *model.HomeInfo) (*model.HomeInfo, error)
	GetServiceImages(ctx context.Context, serviceID string) (*model.ServiceImages, error)
	SaveServiceImages(ctx context.Context, serviceID string, images *model.ServiceImages) (*model.ServiceImages, error)
	GetServicePricing(ctx context.Context, serviceID string) ([]model.PricingTier, error)
	ReplaceServicePricing(ctx context.Context, serviceID string, tiers []model.PricingTier) ([]model.PricingTier, error)
	ListServices() []model.Service
	GetServiceDetail(ctx context.Context, serviceID string, now time.Time) (*model.ServiceDetail, error)
	ListTestimonials(ctx context.Context) ([]model.Testimonial, error)
	CreateTestimonial(ctx context.Context, req *model.CreateTestimonialRequest, now time.Time) (*model.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error
}

// ContentHandler handles HTTP requests for the admin-managed site content.
// Reads are public and answer {} for records never written.
type ContentHandler struct {
	service   ContentServiceInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewContentHandler creates a new ContentHandler with the given service and validator.
func NewContentHandler(svc ContentServiceInterface, v *validator.Validate) *ContentHandler {
	return &ContentHandler{service: svc, validator: v, now: time.Now}
}

// respondRecord writes record, or {} when it is nil.
func respondRecord[T any](c *fiber.Ctx, record *T) error {
	if record == nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(record)
}

// parseAndValidate decodes the JSON body into dst and validates it.
// On failure it writes the 400 response and returns false.
func (h *ContentHandler) parseAndValidate(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, badRequest(c, "invalid request body")
	}
	if err := h.validator.Struct(dst); err != nil {
		return false, badRequest(c, formatValidationError(err))
	}
	return true, nil
}

// GetContactInfo handles GET /api/admin/contact-info.
func (h *ContentHandler) GetContactInfo(c *fiber.Ctx) error {
	info, err := h.service.GetContactInfo(c.Context())
	if err != nil {
		return internalError(c, err, "failed to get contact info")
	}
	return respondRecord(c, info)
}

// SaveContactInfo handles POST /api/admin/contact-info.
func (h *ContentHandler) SaveContactInfo(c *fiber.Ctx) error {
	var req model.ContactInfo
	if ok, err := h.parseAndValidate(c, &req); !ok {
		return err
	}

	saved, err := h.service.SaveContactInfo(c.Context(), &req)
	if err != nil {
		return internalError(c, err, "failed to save contact info")
	}
	return c.JSON(saved)
}

// GetAboutInfo handles GET /api/admin/about-info.
func (h *ContentHandler) GetAboutInfo(c *fiber.Ctx) error {
	info, err := h.service.GetAboutInfo(c.Context())
	if err != nil {
		return internalError(c, err, "failed to get about info")
	}
	return respondRecord(c, info)
}

// SaveAboutInfo handles POST /api/admin/about-info.
func (h *ContentHandler) SaveAboutInfo(c *fiber.Ctx) error {
	var req model.AboutInfo
	if ok, err := h.parseAndValidate(c, &req); !ok {
		return err
	}

	saved, err := h.service.SaveAboutInfo(c.Context(), &req)
	if err != nil {
		return internalError(c, err, "failed to save about info")
	}
	return c.JSON(saved)
}

// GetHomeInfo handles GET /api/admin/home-info.
func (h *ContentHandler) GetHomeInfo(c *fiber.Ctx) error {
	info, err := h.service.GetHomeInfo(c.Context())
	if err != nil {
		return internalError(c, err, "failed to get home info")
	}
	return respondRecord(c, info)
}

// SaveHomeInfo handles POST /api/admin/home-info.
func (h *ContentHandler) SaveHomeInfo(c *fiber.Ctx) error {
	var req model.HomeInfo
	if ok, err := h.parseAndValidate(c, &req); !ok {
		return err
	}

	saved, err := h.service.SaveHomeInfo(c.Context(), &req)
	if err != nil {
		return internalError(c, err, "failed to save home info")
	}
	return c.JSON(saved)
}

// serviceIDParam copies the route's serviceId out of fiber's reusable request buffer.
func serviceIDParam(c *fiber.Ctx) string {
	return utils.CopyString(c.Params("serviceId"))
}

// GetServiceImages handles GET /api/admin/service-images/:serviceId.
func (h *ContentHandler) GetServiceImages(c *fiber.Ctx) error {
	images, err := h.service.GetServiceImages(c.Context(), serviceIDParam(c))
	if err != nil {
		return h.serviceError(c, err, "failed to get service images")
	}
	return respondRecord(c, images)
}

// SaveServiceImages handles POST /api/admin/service-images/:serviceId.
func (h *ContentHandler) SaveServiceImages(c *fiber.Ctx) error {
	var req model.ServiceImages
	if ok, err := h.parseAndValidate(c, &req); !ok {
		return err
	}

	saved, err := h.service.SaveServiceImages(c.Context(), serviceIDParam(c), &req)
	if err != nil {
		return h.serviceError(c, err, "failed to save service images")
	}
	return c.JSON(saved)
}

// GetServicePricing handles GET /api/admin/service-pricing/:serviceId.
func (h *ContentHandler) GetServicePricing(c *fiber.Ctx) error {
	tiers, err := h.service.GetServicePricing(c.Context(), serviceIDParam(c))
	if err != nil {
		return h.serviceError(c, err, "failed to get service pricing")
	}
	return c.JSON(tiers)
}

// ReplaceServicePricing handles POST /api/admin/service-pricing/:serviceId.
// The body is the complete tier list; stored tiers not in it are removed.
func (h *ContentHandler) ReplaceServicePricing(c *fiber.Ctx) error {
	var tiers []model.PricingTier
	if err := c.BodyParser(&tiers); err != nil || tiers == nil {
		return badRequest(c, "invalid request body")
	}
	for _, tier := range tiers {
		if err := h.validator.Struct(tier); err != nil {
			return badRequest(c, formatValidationError(err))
		}
	}

	saved, err := h.service.ReplaceServicePricing(c.Context(), serviceIDParam(c), tiers)
	if err != nil {
		return h.serviceError(c, err, "failed to replace service pricing")
	}
	return c.JSON(saved)
}

// ListServices handles GET /api/services.
func (h *ContentHandler) ListServices(c *fiber.Ctx) error {
	return c.JSON(h.service.ListServices())
}

// GetServiceDetail handles GET /api/services/:serviceId.
func (h *ContentHandler) GetServiceDetail(c *fiber.Ctx) error {
	detail, err := h.service.GetServiceDetail(c.Context(), serviceIDParam(c), h.now())
	if err != nil {
		if errors.Is(err, service.ErrUnknownService) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "service not found"})
		}
		return internalError(c, err, "failed to get service detail")
	}
	return c.JSON(detail)
}

func (h *ContentHandler) serviceError(c *fiber.Ctx, err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrUnknownService):
		return badRequest(c, "invalid request: unknown serviceId")
	case errors.Is(err, service.ErrInvalidRequest):
		return badRequest(c, "invalid request")
	default:
		return internalError(c, err, msg)
	}
}
