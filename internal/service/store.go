package service

import (
	"context"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
)

// PromoRepositoryInterface defines data access for monthly promo counters.
// GetPromoStatus returns nil, nil when the month has no record.
type PromoRepositoryInterface interface {
	GetPromoStatus(ctx context.Context, month, year int) (*model.PromoStatus, error)
	CreatePromoStatus(ctx context.Context, status *model.PromoStatus) error
	UpsertPromoStatus(ctx context.Context, status *model.PromoStatus) error
}

// SiteContentRepositoryInterface defines data access for the singleton content records.
// Getters return nil, nil when nothing has been saved yet.
type SiteContentRepositoryInterface interface {
	GetContactInfo(ctx context.Context) (*model.ContactInfo, error)
	SaveContactInfo(ctx context.Context, info *model.ContactInfo) (*model.ContactInfo, error)
	GetAboutInfo(ctx context.Context) (*model.AboutInfo, error)
	SaveAboutInfo(ctx context.Context, info *model.AboutInfo) (*model.AboutInfo, error)
	GetHomeInfo(ctx context.Context) (*model.HomeInfo, error)
	SaveHomeInfo(ctx context.Context, info *model.HomeInfo) (*model.HomeInfo, error)
}

// ServiceContentRepositoryInterface defines data access for per-service images and pricing.
type ServiceContentRepositoryInterface interface {
	GetServiceImages(ctx context.Context, serviceID string) (*model.ServiceImages, error)
	SaveServiceImages(ctx context.Context, images *model.ServiceImages) (*model.ServiceImages, error)
	GetServicePricing(ctx context.Context, serviceID string) ([]model.PricingTier, error)
	ReplaceServicePricing(ctx context.Context, serviceID string, tiers []model.PricingTier) ([]model.PricingTier, error)
}

// TestimonialRepositoryInterface defines data access for testimonials.
type TestimonialRepositoryInterface interface {
	ListTestimonials(ctx context.Context) ([]model.Testimonial, error)
	CreateTestimonial(ctx context.Context, t *model.Testimonial) error
	DeleteTestimonial(ctx context.Context, id string) error
}

// UserRepositoryInterface defines data access for admin users.
type UserRepositoryInterface interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
}

// Store is the full storage adapter. The Postgres and in-memory stores both satisfy it.
type Store interface {
	PromoRepositoryInterface
	SiteContentRepositoryInterface
	ServiceContentRepositoryInterface
	TestimonialRepositoryInterface
	UserRepositoryInterface
	Ping(ctx context.Context) error
}
