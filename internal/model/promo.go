package model

import (
	"math"
	"time"
)

// DefaultPromoSlots is the slot count a month starts with the first time it is read.
const DefaultPromoSlots = 3

// MaxStoredInt is the largest count or price the INTEGER columns hold.
const MaxStoredInt = math.MaxInt32

// PromoDiscountPercent is the discount applied to every tier while slots remain.
const PromoDiscountPercent = 50

// PromoStatus is the stored slot counter for one calendar month.
// Month is zero-based (0 = January) to match the public API.
type PromoStatus struct {
	Month          int
	Year           int
	SlotsRemaining int
	LastUpdated    time.Time
}

// Active reports whether the discount banner should be shown.
func (p PromoStatus) Active() bool {
	return p.SlotsRemaining > 0
}

// PromoStatusResponse is the API response DTO for the promo endpoints.
type PromoStatusResponse struct {
	SlotsRemaining int  `json:"slotsRemaining"`
	PromoActive    bool `json:"promoActive"`
	Month          int  `json:"month"`
	Year           int  `json:"year"`
}

// UpdatePromoSlotsRequest is the DTO for POST /api/promo/update-slots.
type UpdatePromoSlotsRequest struct {
	Slots *int `json:"slots" validate:"required,gte=0,lte=2147483647"`
}

// PromoPrice returns the price a visitor pays for a tier.
func PromoPrice(originalPrice int, promoActive bool) int {
	if !promoActive {
		return originalPrice
	}
	// round half up, matching the site's displayed prices
	return (originalPrice*(100-PromoDiscountPercent) + 50) / 100
}
