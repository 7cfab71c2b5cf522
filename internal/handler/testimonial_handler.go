package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
	"github.com/Stanley42442/OptiSolveLabs/internal/service"
)

// ListTestimonials handles GET /api/testimonials.
func (h *ContentHandler) ListTestimonials(c *fiber.Ctx) error {
	list, err := h.service.ListTestimonials(c.Context())
	if err != nil {
		return internalError(c, err, "failed to list testimonials")
	}
	return c.JSON(list)
}

// CreateTestimonial handles POST /api/testimonials. Anyone may submit one.
func (h *ContentHandler) CreateTestimonial(c *fiber.Ctx) error {
	var req model.CreateTestimonialRequest
	if ok, err := h.parseAndValidate(c, &req); !ok {
		return err
	}

	created, err := h.service.CreateTestimonial(c.Context(), &req, h.now())
	if err != nil {
		if errors.Is(err, service.ErrTestimonialExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "testimonial already exists"})
		}
		if errors.Is(err, service.ErrInvalidRequest) {
			return badRequest(c, "invalid request")
		}
		return internalError(c, err, "failed to create testimonial")
	}

	log.Info().Str("testimonial_id", created.ID).Int("rating", created.Rating).Msg("testimonial created")
	return c.Status(fiber.StatusCreated).JSON(created)
}

// DeleteTestimonial handles DELETE /api/admin/testimonials/:id. The route is admin-only.
func (h *ContentHandler) DeleteTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteTestimonial(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrTestimonialNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "testimonial not found"})
		}
		return internalError(c, err, "failed to delete testimonial")
	}

	log.Info().Str("testimonial_id", id).Msg("testimonial deleted")
	return c.JSON(fiber.Map{"success": true})
}
