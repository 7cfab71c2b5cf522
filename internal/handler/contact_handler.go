package handler

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
	"github.com/Stanley42442/OptiSolveLabs/internal/service"
)

// ContactServiceInterface defines the interface for contact intake.
type ContactServiceInterface interface {
	Submit(ctx context.Context, msg *model.ContactSubmission) (*model.ContactResponse, error)
}

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	service   ContactServiceInterface
	validator *validator.Validate
}

// NewContactHandler creates a new ContactHandler with the given service and validator.
func NewContactHandler(svc ContactServiceInterface, v *validator.Validate) *ContactHandler {
	return &ContactHandler{service: svc, validator: v}
}

// Submit handles POST /api/contact.
// Answers 200 once the submission is valid, whether or not any notifier delivered it.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req model.ContactSubmission

	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, formatValidationError(err))
	}

	resp, err := h.service.Submit(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidContact) {
			return badRequest(c, "invalid request")
		}
		return internalError(c, err, "failed to submit contact form")
	}
	return c.JSON(resp)
}
