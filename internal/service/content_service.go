package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
)

// PromoStatusReader is the part of PromoService that content pages need for promo pricing.
type PromoStatusReader interface {
	GetStatus(ctx context.Context, now time.Time) (*model.PromoStatusResponse, error)
}

// ContentService provides business logic for the admin-managed site content.
type ContentService struct {
	site         SiteContentRepositoryInterface
	services     ServiceContentRepositoryInterface
	testimonials TestimonialRepositoryInterface
	promo        PromoStatusReader
}

// NewContentService creates a ContentService over the given repositories.
func NewContentService(
	site SiteContentRepositoryInterface,
	services ServiceContentRepositoryInterface,
	testimonials TestimonialRepositoryInterface,
	promo PromoStatusReader,
) *ContentService {
	return &ContentService{
		site:         site,
		services:     services,
		testimonials: testimonials,
		promo:        promo,
	}
}

// GetContactInfo returns the contact details, or nil if never saved.
func (s *ContentService) GetContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	info, err := s.site.GetContactInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("get contact info: %w", err)
	}
	return info, nil
}

// SaveContactInfo upserts the contact details.
func (s *ContentService) SaveContactInfo(ctx context.Context, info *model.ContactInfo) (*model.ContactInfo, error) {
	if info == nil {
		return nil, ErrInvalidRequest
	}
	saved, err := s.site.SaveContactInfo(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("save contact info: %w", err)
	}
	return saved, nil
}

// GetAboutInfo returns the about page content, or nil if never saved.
func (s *ContentService) GetAboutInfo(ctx context.Context) (*model.AboutInfo, error) {
	info, err := s.site.GetAboutInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("get about info: %w", err)
	}
	return info, nil
}

// SaveAboutInfo upserts the about page content.
func (s *ContentService) SaveAboutInfo(ctx context.Context, info *model.AboutInfo) (*model.AboutInfo, error) {
	if info == nil {
		return nil, ErrInvalidRequest
	}
	saved, err := s.site.SaveAboutInfo(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("save about info: %w", err)
	}
	return saved, nil
}

// GetHomeInfo returns the home page content, or nil if never saved.
func (s *ContentService) GetHomeInfo(ctx context.Context) (*model.HomeInfo, error) {
	info, err := s.site.GetHomeInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("get home info: %w", err)
	}
	return info, nil
}

// SaveHomeInfo upserts the home page content.
func (s *ContentService) SaveHomeInfo(ctx context.Context, info *model.HomeInfo) (*model.HomeInfo, error) {
	if info == nil {
		return nil, ErrInvalidRequest
	}
	saved, err := s.site.SaveHomeInfo(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("save home info: %w", err)
	}
	return saved, nil
}

// GetServiceImages returns the before/after images of a catalog service, or nil if never saved
// or the id is not in the catalog.
func (s *ContentService) GetServiceImages(ctx context.Context, serviceID string) (*model.ServiceImages, error) {
	svc, ok := model.LookupService(serviceID)
	if !ok {
		return nil, nil
	}
	images, err := s.services.GetServiceImages(ctx, svc.ID)
	if err != nil {
		return nil, fmt.Errorf("get service images %s: %w", svc.ID, err)
	}
	return images, nil
}

// SaveServiceImages upserts the before/after images of a catalog service.
// The stored id is the catalog's own string, never the caller's.
func (s *ContentService) SaveServiceImages(ctx context.Context, serviceID string, images *model.ServiceImages) (*model.ServiceImages, error) {
	svc, ok := model.LookupService(serviceID)
	if !ok {
		return nil, ErrUnknownService
	}
	if images == nil {
		return nil, ErrInvalidRequest
	}
	images.ServiceID = svc.ID
	saved, err := s.services.SaveServiceImages(ctx, images)
	if err != nil {
		return nil, fmt.Errorf("save service images %s: %w", svc.ID, err)
	}
	return saved, nil
}

// GetServicePricing returns the stored tiers of a catalog service in insertion order.
// Returns an empty slice, not nil, when none are stored or the id is not in the catalog.
func (s *ContentService) GetServicePricing(ctx context.Context, serviceID string) ([]model.PricingTier, error) {
	svc, ok := model.LookupService(serviceID)
	if !ok {
		return []model.PricingTier{}, nil
	}
	tiers, err := s.services.GetServicePricing(ctx, svc.ID)
	if err != nil {
		return nil, fmt.Errorf("get service pricing %s: %w", svc.ID, err)
	}
	if tiers == nil {
		tiers = []model.PricingTier{}
	}
	return tiers, nil
}

// ReplaceServicePricing replaces every stored tier of a catalog service with tiers.
func (s *ContentService) ReplaceServicePricing(ctx context.Context, serviceID string, tiers []model.PricingTier) ([]model.PricingTier, error) {
	svc, ok := model.LookupService(serviceID)
	if !ok {
		return nil, ErrUnknownService
	}
	if tiers == nil {
		return nil, ErrInvalidRequest
	}
	for _, t := range tiers {
		if t.OriginalPrice == nil || *t.OriginalPrice < 0 || *t.OriginalPrice > model.MaxStoredInt {
			return nil, ErrInvalidRequest
		}
	}
	saved, err := s.services.ReplaceServicePricing(ctx, svc.ID, tiers)
	if err != nil {
		return nil, fmt.Errorf("replace service pricing %s: %w", svc.ID, err)
	}
	if saved == nil {
		saved = []model.PricingTier{}
	}
	return saved, nil
}

// ListServices returns the service catalog in display order.
func (s *ContentService) ListServices() []model.Service {
	services := make([]model.Service, len(model.Catalog))
	copy(services, model.Catalog)
	return services
}

// GetServiceDetail returns a catalog service with its images and tiers priced for the month containing now.
func (s *ContentService) GetServiceDetail(ctx context.Context, serviceID string, now time.Time) (*model.ServiceDetail, error) {
	svc, ok := model.LookupService(serviceID)
	if !ok {
		return nil, ErrUnknownService
	}

	images, err := s.GetServiceImages(ctx, svc.ID)
	if err != nil {
		return nil, err
	}
	tiers, err := s.GetServicePricing(ctx, svc.ID)
	if err != nil {
		return nil, err
	}
	status, err := s.promo.GetStatus(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("get promo status: %w", err)
	}

	quoted := make([]model.QuotedTier, 0, len(tiers))
	for _, t := range tiers {
		quoted = append(quoted, model.QuotedTier{
			PricingTier: t,
			PromoPrice:  model.PromoPrice(t.Price(), status.PromoActive),
		})
	}

	return &model.ServiceDetail{
		Service:     svc,
		Images:      images,
		PromoActive: status.PromoActive,
		Pricing:     quoted,
	}, nil
}

// ListTestimonials returns every testimonial, newest first.
// Returns an empty slice, not nil, when there are none.
func (s *ContentService) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	list, err := s.testimonials.ListTestimonials(ctx)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	if list == nil {
		list = []model.Testimonial{}
	}
	return list, nil
}

// CreateTestimonial stores a public testimonial submission.
// Returns ErrTestimonialExists if the client-generated id is already used.
func (s *ContentService) CreateTestimonial(ctx context.Context, req *model.CreateTestimonialRequest, now time.Time) (*model.Testimonial, error) {
	if req == nil || req.Rating == nil || *req.Rating < 1 || *req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	t := &model.Testimonial{
		ID:        strings.TrimSpace(req.ID),
		Name:      strings.TrimSpace(req.Name),
		Location:  strings.TrimSpace(req.Location),
		Rating:    *req.Rating,
		Quote:     strings.TrimSpace(req.Quote),
		CreatedAt: now,
	}
	if err := s.testimonials.CreateTestimonial(ctx, t); err != nil {
		if errors.Is(err, ErrTestimonialExists) {
			return nil, ErrTestimonialExists
		}
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return t, nil
}

// DeleteTestimonial removes a testimonial by id.
// Returns ErrTestimonialNotFound if no testimonial has that id.
func (s *ContentService) DeleteTestimonial(ctx context.Context, id string) error {
	if err := s.testimonials.DeleteTestimonial(ctx, id); err != nil {
		if errors.Is(err, ErrTestimonialNotFound) {
			return ErrTestimonialNotFound
		}
		return fmt.Errorf("delete testimonial %s: %w", id, err)
	}
	return nil
}
