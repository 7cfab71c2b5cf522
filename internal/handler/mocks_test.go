package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
)

const testAdminSecret = "s3cret"

func intPtr(i int) *int {
	return &i
}

// doRequest sends a request through app.Test and returns the status and raw body.
func doRequest(t *testing.T, app *fiber.App, method, path, body string, headers map[string]string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// decodeJSON unmarshals a response body into T.
func decodeJSON[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), "body: %s", raw)
	return v
}

func adminHeaders() map[string]string {
	return map[string]string{AdminSecretHeader: testAdminSecret}
}

// mockPromoService is a mock implementation of PromoServiceInterface.
type mockPromoService struct {
	getStatusFn func(ctx context.Context, now time.Time) (*model.PromoStatusResponse, error)
	setSlotsFn  func(ctx context.Context, now time.Time, slots int) (*model.PromoStatusResponse, error)
}

func (m *mockPromoService) GetStatus(ctx context.Context, now time.Time) (*model.PromoStatusResponse, error) {
	if m.getStatusFn != nil {
		return m.getStatusFn(ctx, now)
	}
	return nil, nil
}

func (m *mockPromoService) SetSlots(ctx context.Context, now time.Time, slots int) (*model.PromoStatusResponse, error) {
	if m.setSlotsFn != nil {
		return m.setSlotsFn(ctx, now, slots)
	}
	return nil, nil
}

// mockContentService is a mock implementation of ContentServiceInterface.
type mockContentService struct {
	getContactInfoFn    func(ctx context.Context) (*model.ContactInfo, error)
	saveContactInfoFn   func(ctx context.Context, info *model.ContactInfo) (*model.ContactInfo, error)
	getAboutInfoFn      func(ctx context.Context) (*model.AboutInfo, error)
	saveAboutInfoFn     func(ctx context.Context, info *model.AboutInfo) (*model.AboutInfo, error)
	getHomeInfoFn       func(ctx context.Context) (*model.HomeInfo, error)
	saveHomeInfoFn      func(ctx context.Context, info *model.HomeInfo) (*model.HomeInfo, error)
	getServiceImagesFn  func(ctx context.Context, serviceID string) (*model.ServiceImages, error)
	saveServiceImagesFn func(ctx context.Context, serviceID string, images *model.ServiceImages) (*model.ServiceImages, error)
	getPricingFn        func(ctx context.Context, serviceID string) ([]model.PricingTier, error)
	replacePricingFn    func(ctx context.Context, serviceID string, tiers []model.PricingTier) ([]model.PricingTier, error)
	listServicesFn      func() []model.Service
	getServiceDetailFn  func(ctx context.Context, serviceID string, now time.Time) (*model.ServiceDetail, error)
	listTestimonialsFn  func(ctx context.Context) ([]model.Testimonial, error)
	createTestimonialFn func(ctx context.Context, req *model.CreateTestimonialRequest, now time.Time) (*model.Testimonial, error)
	deleteTestimonialFn func(ctx context.Context, id string) error
}

func (m *mockContentService) GetContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	if m.getContactInfoFn != nil {
		return m.getContactInfoFn(ctx)
	}
	return nil, nil
}

func (m *mockContentService) SaveContactInfo(ctx context.Context, info *model.ContactInfo) (*model.ContactInfo, error) {
	if m.saveContactInfoFn != nil {
		return m.saveContactInfoFn(ctx, info)
	}
	return info, nil
}

func (m *mockContentService) GetAboutInfo(ctx context.Context) (*model.AboutInfo, error) {
	if m.getAboutInfoFn != nil {
		return m.getAboutInfoFn(ctx)
	}
	return nil, nil
}

func (m *mockContentService) SaveAboutInfo(ctx context.Context, info *model.AboutInfo) (*model.AboutInfo, error) {
	if m.saveAboutInfoFn != nil {
		return m.saveAboutInfoFn(ctx, info)
	}
	return info, nil
}

func (m *mockContentService) GetHomeInfo(ctx context.Context) (*model.HomeInfo, error) {
	if m.getHomeInfoFn != nil {
		return m.getHomeInfoFn(ctx)
	}
	return nil, nil
}

func (m *mockContentService) SaveHomeInfo(ctx context.Context, info *model.HomeInfo) (*model.HomeInfo, error) {
	if m.saveHomeInfoFn != nil {
		return m.saveHomeInfoFn(ctx, info)
	}
	return info, nil
}

func (m *mockContentService) GetServiceImages(ctx context.Context, serviceID string) (*model.ServiceImages, error) {
	if m.getServiceImagesFn != nil {
		return m.getServiceImagesFn(ctx, serviceID)
	}
	return nil, nil
}

func (m *mockContentService) SaveServiceImages(ctx context.Context, serviceID string, images *model.ServiceImages) (*model.ServiceImages, error) {
	if m.saveServiceImagesFn != nil {
		return m.saveServiceImagesFn(ctx, serviceID, images)
	}
	return images, nil
}

func (m *mockContentService) GetServicePricing(ctx context.Context, serviceID string) ([]model.PricingTier, error) {
	if m.getPricingFn != nil {
		return m.getPricingFn(ctx, serviceID)
	}
	return []model.PricingTier{}, nil
}

func (m *mockContentService) ReplaceServicePricing(ctx context.Context, serviceID string, tiers []model.PricingTier) ([]model.PricingTier, error) {
	if m.replacePricingFn != nil {
		return m.replacePricingFn(ctx, serviceID, tiers)
	}
	return tiers, nil
}

func (m *mockContentService) ListServices() []model.Service {
	if m.listServicesFn != nil {
		return m.listServicesFn()
	}
	return nil
}

func (m *mockContentService) GetServiceDetail(ctx context.Context, serviceID string, now time.Time) (*model.ServiceDetail, error) {
	if m.getServiceDetailFn != nil {
		return m.getServiceDetailFn(ctx, serviceID, now)
	}
	return nil, nil
}

func (m *mockContentService) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	if m.listTestimonialsFn != nil {
		return m.listTestimonialsFn(ctx)
	}
	return []model.Testimonial{}, nil
}

func (m *mockContentService) CreateTestimonial(ctx context.Context, req *model.CreateTestimonialRequest, now time.Time) (*model.Testimonial, error) {
	if m.createTestimonialFn != nil {
		return m.createTestimonialFn(ctx, req, now)
	}
	return nil, nil
}

func (m *mockContentService) DeleteTestimonial(ctx context.Context, id string) error {
	if m.deleteTestimonialFn != nil {
		return m.deleteTestimonialFn(ctx, id)
	}
	return nil
}

// mockContactService is a mock implementation of ContactServiceInterface.
type mockContactService struct {
	submitFn func(ctx context.Context, msg *model.ContactSubmission) (*model.ContactResponse, error)
}

func (m *mockContactService) Submit(ctx context.Context, msg *model.ContactSubmission) (*model.ContactResponse, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, msg)
	}
	return &model.ContactResponse{Success: true, Message: "ok"}, nil
}

// mockImageService is a mock implementation of ImageServiceInterface.
type mockImageService struct {
	uploadFn func(ctx context.Context, filename string, size int64, body io.Reader) (string, error)
}

func (m *mockImageService) Upload(ctx context.Context, filename string, size int64, body io.Reader) (string, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, filename, size, body)
	}
	return "", nil
}

// mockPinger implements Pinger for health checks.
type mockPinger struct {
	pingErr error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.pingErr
}

