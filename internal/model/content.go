package model

import "time"

// ContactInfo is the singleton block of business contact details shown on the site.
type ContactInfo struct {
	WhatsAppNumber string    `json:"whatsappNumber" validate:"required,notblank,max=32"`
	Phone          string    `json:"phone" validate:"max=32"`
	Email          string    `json:"email" validate:"required,contains=@,max=255"`
	Location       string    `json:"location" validate:"max=255"`
	BusinessHours  string    `json:"businessHours" validate:"max=255"`
	UpdatedAt      time.Time `json:"updatedAt" validate:"-"`
}

// AboutInfo is the singleton content of the about page.
type AboutInfo struct {
	AboutText   string    `json:"aboutText" validate:"required,notblank"`
	MissionText string    `json:"missionText"`
	PictureURL  string    `json:"pictureUrl" validate:"omitempty,url,max=2048"`
	UpdatedAt   time.Time `json:"updatedAt" validate:"-"`
}

// HomeInfo is the singleton content of the home page.
type HomeInfo struct {
	DemoVideoURL string    `json:"demoVideoUrl" validate:"required,url,max=2048"`
	UpdatedAt    time.Time `json:"updatedAt" validate:"-"`
}

// ServiceImages holds the before/after showcase images of one service.
type ServiceImages struct {
	ServiceID      string    `json:"serviceId" validate:"-"`
	BeforeImageURL string    `json:"beforeImageUrl" validate:"required,url,max=2048"`
	AfterImageURL  string    `json:"afterImageUrl" validate:"required,url,max=2048"`
	UpdatedAt      time.Time `json:"updatedAt" validate:"-"`
}

// PricingTier is one purchasable tier of a service.
// OriginalPrice is in minor currency units.
type PricingTier struct {
	TierName      string   `json:"tierName" validate:"required,notblank,max=100"`
	OriginalPrice *int     `json:"originalPrice" validate:"required,gte=0,lte=2147483647"`
	DeliveryTime  string   `json:"deliveryTime" validate:"required,notblank,max=100"`
	Features      []string `json:"features" validate:"required,dive,notblank"`
}

// Price dereferences OriginalPrice, treating a missing price as zero.
func (t PricingTier) Price() int {
	if t.OriginalPrice == nil {
		return 0
	}
	return *t.OriginalPrice
}

// QuotedTier is a PricingTier with the price a visitor pays this month.
type QuotedTier struct {
	PricingTier
	PromoPrice int `json:"promoPrice"`
}
