package service

import (
	"context"
	"time"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
)

func intPtr(i int) *int {
	return &i
}

// mockPromoRepository is a mock implementation of PromoRepositoryInterface.
type mockPromoRepository struct {
	getFn    func(ctx context.Context, month, year int) (*model.PromoStatus, error)
	createFn func(ctx context.Context, status *model.PromoStatus) error
	upsertFn func(ctx context.Context, status *model.PromoStatus) error
}

func (m *mockPromoRepository) GetPromoStatus(ctx context.Context, month, year int) (*model.PromoStatus, error) {
	if m.getFn != nil {
		return m.getFn(ctx, month, year)
	}
	return nil, nil
}

func (m *mockPromoRepository) CreatePromoStatus(ctx context.Context, status *model.PromoStatus) error {
	if m.createFn != nil {
		return m.createFn(ctx, status)
	}
	return nil
}

func (m *mockPromoRepository) UpsertPromoStatus(ctx context.Context, status *model.PromoStatus) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, status)
	}
	return nil
}

// mockSiteContentRepository is a mock implementation of SiteContentRepositoryInterface.
type mockSiteContentRepository struct {
	getContactFn  func(ctx context.Context) (*model.ContactInfo, error)
	saveContactFn func(ctx context.Context, info *model.ContactInfo) (*model.ContactInfo, error)
	getAboutFn    func(ctx context.Context) (*model.AboutInfo, error)
	saveAboutFn   func(ctx context.Context, info *model.AboutInfo) (*model.AboutInfo, error)
	getHomeFn     func(ctx context.Context) (*model.HomeInfo, error)
	saveHomeFn    func(ctx context.Context, info *model.HomeInfo) (*model.HomeInfo, error)
}

func (m *mockSiteContentRepository) GetContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	if m.getContactFn != nil {
		return m.getContactFn(ctx)
	}
	return nil, nil
}

func (m *mockSiteContentRepository) SaveContactInfo(ctx context.Context, info *model.ContactInfo) (*model.ContactInfo, error) {
	if m.saveContactFn != nil {
		return m.saveContactFn(ctx, info)
	}
	return info, nil
}

func (m *mockSiteContentRepository) GetAboutInfo(ctx context.Context) (*model.AboutInfo, error) {
	if m.getAboutFn != nil {
		return m.getAboutFn(ctx)
	}
	return nil, nil
}

func (m *mockSiteContentRepository) SaveAboutInfo(ctx context.Context, info *model.AboutInfo) (*model.AboutInfo, error) {
	if m.saveAboutFn != nil {
		return m.saveAboutFn(ctx, info)
	}
	return info, nil
}

func (m *mockSiteContentRepository) GetHomeInfo(ctx context.Context) (*model.HomeInfo, error) {
	if m.getHomeFn != nil {
		return m.getHomeFn(ctx)
	}
	return nil, nil
}

func (m *mockSiteContentRepository) SaveHomeInfo(ctx context.Context, info *model.HomeInfo) (*model.HomeInfo, error) {
	if m.saveHomeFn != nil {
		return m.saveHomeFn(ctx, info)
	}
	return info, nil
}

// mockServiceContentRepository is a mock implementation of ServiceContentRepositoryInterface.
type mockServiceContentRepository struct {
	getImagesFn      func(ctx context.Context, serviceID string) (*model.ServiceImages, error)
	saveImagesFn     func(ctx context.Context, images *model.ServiceImages) (*model.ServiceImages, error)
	getPricingFn     func(ctx context.Context, serviceID string) ([]model.PricingTier, error)
	replacePricingFn func(ctx context.Context, serviceID string, tiers []model.PricingTier) ([]model.PricingTier, error)
}

func (m *mockServiceContentRepository) GetServiceImages(ctx context.Context, serviceID string) (*model.ServiceImages, error) {
	if m.getImagesFn != nil {
		return m.getImagesFn(ctx, serviceID)
	}
	return nil, nil
}

func (m *mockServiceContentRepository) SaveServiceImages(ctx context.Context, images *model.ServiceImages) (*model.ServiceImages, error) {
	if m.saveImagesFn != nil {
		return m.saveImagesFn(ctx, images)
	}
	return images, nil
}

func (m *mockServiceContentRepository) GetServicePricing(ctx context.Context, serviceID string) ([]model.PricingTier, error) {
	if m.getPricingFn != nil {
		return m.getPricingFn(ctx, serviceID)
	}
	return nil, nil
}

func (m *mockServiceContentRepository) ReplaceServicePricing(ctx context.Context, serviceID string, tiers []model.PricingTier) ([]model.PricingTier, error) {
	if m.replacePricingFn != nil {
		return m.replacePricingFn(ctx, serviceID, tiers)
	}
	return tiers, nil
}

// mockTestimonialRepository is a mock implementation of TestimonialRepositoryInterface.
type mockTestimonialRepository struct {
	listFn   func(ctx context.Context) ([]model.Testimonial, error)
	createFn func(ctx context.Context, t *model.Testimonial) error
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockTestimonialRepository) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockTestimonialRepository) CreateTestimonial(ctx context.Context, t *model.Testimonial) error {
	if m.createFn != nil {
		return m.createFn(ctx, t)
	}
	return nil
}

func (m *mockTestimonialRepository) DeleteTestimonial(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// stubPromoReader returns a fixed promo status.
type stubPromoReader struct {
	status *model.PromoStatusResponse
	err    error
}

func (s *stubPromoReader) GetStatus(ctx context.Context, now time.Time) (*model.PromoStatusResponse, error) {
	return s.status, s.err
}

// mockUserRepository is a mock implementation of UserRepositoryInterface.
type mockUserRepository struct {
	createFn func(ctx context.Context, user *model.User) error
}

func (m *mockUserRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, nil
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.ID = "generated"
	return nil
}

// mockStore combines the repository mocks into a Store.
type mockStore struct {
	*mockPromoRepository
	*mockSiteContentRepository
	*mockServiceContentRepository
	*mockTestimonialRepository
	*mockUserRepository
}

func (m *mockStore) Ping(ctx context.Context) error { return nil }

func newMockStore() *mockStore {
	return &mockStore{
		mockPromoRepository:          &mockPromoRepository{},
		mockSiteContentRepository:    &mockSiteContentRepository{},
		mockServiceContentRepository: &mockServiceContentRepository{},
		mockTestimonialRepository:    &mockTestimonialRepository{},
		mockUserRepository:           &mockUserRepository{},
	}
}
