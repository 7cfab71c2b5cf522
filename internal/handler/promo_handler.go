package handler

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
	"github.com/Stanley42442/OptiSolveLabs/internal/service"
)

// PromoServiceInterface defines the interface for promo slot business logic.
type PromoServiceInterface interface {
	GetStatus(ctx context.Context, now time.Time) (*model.PromoStatusResponse, error)
	SetSlots(ctx context.Context, now time.Time, slots int) (*model.PromoStatusResponse, error)
}

// PromoHandler handles HTTP requests for the promo banner.
type PromoHandler struct {
	service   PromoServiceInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewPromoHandler creates a new PromoHandler with the given service and validator.
func NewPromoHandler(svc PromoServiceInterface, v *validator.Validate) *PromoHandler {
	return &PromoHandler{service: svc, validator: v, now: time.Now}
}

// GetStatus handles GET /api/promo/status.
func (h *PromoHandler) GetStatus(c *fiber.Ctx) error {
	status, err := h.service.GetStatus(c.Context(), h.now())
	if err != nil {
		return internalError(c, err, "failed to fetch promo status")
	}
	return c.JSON(status)
}

// UpdateSlots handles POST /api/promo/update-slots. The route is admin-only.
func (h *PromoHandler) UpdateSlots(c *fiber.Ctx) error {
	var req model.UpdatePromoSlotsRequest

	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, formatValidationError(err))
	}

	status, err := h.service.SetSlots(c.Context(), h.now(), *req.Slots)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSlots) {
			return badRequest(c, "invalid request: "+err.Error())
		}
		return internalError(c, err, "failed to update promo slots")
	}

	log.Info().
		Int("slots_remaining", status.SlotsRemaining).
		Int("month", status.Month).
		Int("year", status.Year).
		Msg("promo slots updated")

	return c.JSON(status)
}
