package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
	"github.com/Stanley42442/OptiSolveLabs/internal/service"
)

type promoKey struct {
	month int
	year  int
}

// MemoryStore is an in-process storage adapter with the same observable behaviour as PostgresStore.
// Data lives only as long as the process. Values are copied on the way in and out.
type MemoryStore struct {
	mu sync.RWMutex

	promo         map[promoKey]model.PromoStatus
	contact       *model.ContactInfo
	about         *model.AboutInfo
	home          *model.HomeInfo
	serviceImages map[string]model.ServiceImages
	pricing       map[string][]model.PricingTier
	testimonials  map[string]model.Testimonial
	users         map[string]model.User

	now func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		promo:         make(map[promoKey]model.PromoStatus),
		serviceImages: make(map[string]model.ServiceImages),
		pricing:       make(map[string][]model.PricingTier),
		testimonials:  make(map[string]model.Testimonial),
		users:         make(map[string]model.User),
		now:           time.Now,
	}
}

var _ service.Store = (*MemoryStore)(nil)

// Ping succeeds unless ctx is already done.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// GetPromoStatus returns the counter for month and year, or nil if that month was never created.
func (s *MemoryStore) GetPromoStatus(ctx context.Context, month, year int) (*model.PromoStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status, ok := s.promo[promoKey{month, year}]
	if !ok {
		return nil, nil
	}
	return &status, nil
}

// CreatePromoStatus stores a new month counter. It returns ErrPromoStatusExists if the month already has one.
func (s *MemoryStore) CreatePromoStatus(ctx context.Context, status *model.PromoStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := promoKey{status.Month, status.Year}
	if _, ok := s.promo[key]; ok {
		return service.ErrPromoStatusExists
	}
	s.promo[key] = *status
	return nil
}

// UpsertPromoStatus stores the counter for the status month, replacing any existing one.
func (s *MemoryStore) UpsertPromoStatus(ctx context.Context, status *model.PromoStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.promo[promoKey{status.Month, status.Year}] = *status
	return nil
}

// GetContactInfo returns a copy of the contact details, or nil if never saved.
func (s *MemoryStore) GetContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.contact == nil {
		return nil, nil
	}
	info := *s.contact
	return &info, nil
}

// SaveContactInfo replaces the contact details and stamps UpdatedAt.
func (s *MemoryStore) SaveContactInfo(ctx context.Context, info *model.ContactInfo) (*model.ContactInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *info
	stored.UpdatedAt = s.now()
	s.contact = &stored
	out := stored
	return &out, nil
}

// GetAboutInfo returns a copy of the about page content, or nil if never saved.
func (s *MemoryStore) GetAboutInfo(ctx context.Context) (*model.AboutInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.about == nil {
		return nil, nil
	}
	info := *s.about
	return &info, nil
}

// SaveAboutInfo replaces the about page content and stamps UpdatedAt.
func (s *MemoryStore) SaveAboutInfo(ctx context.Context, info *model.AboutInfo) (*model.AboutInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *info
	stored.UpdatedAt = s.now()
	s.about = &stored
	out := stored
	return &out, nil
}

// GetHomeInfo returns a copy of the home page content, or nil if never saved.
func (s *MemoryStore) GetHomeInfo(ctx context.Context) (*model.HomeInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.home == nil {
		return nil, nil
	}
	info := *s.home
	return &info, nil
}

// SaveHomeInfo replaces the home page content and stamps UpdatedAt.
func (s *MemoryStore) SaveHomeInfo(ctx context.Context, info *model.HomeInfo) (*model.HomeInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *info
	stored.UpdatedAt = s.now()
	s.home = &stored
	out := stored
	return &out, nil
}

// GetServiceImages returns the showcase images of serviceID, or nil if none were saved.
func (s *MemoryStore) GetServiceImages(ctx context.Context, serviceID string) (*model.ServiceImages, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	images, ok := s.serviceImages[serviceID]
	if !ok {
		return nil, nil
	}
	return &images, nil
}

// SaveServiceImages replaces the showcase images keyed by images.ServiceID.
func (s *MemoryStore) SaveServiceImages(ctx context.Context, images *model.ServiceImages) (*model.ServiceImages, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *images
	stored.UpdatedAt = s.now()
	s.serviceImages[stored.ServiceID] = stored
	return &stored, nil
}

// GetServicePricing returns the tiers of serviceID in position order. The result is never nil.
func (s *MemoryStore) GetServicePricing(ctx context.Context, serviceID string) ([]model.PricingTier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyTiers(s.pricing[serviceID]), nil
}

// ReplaceServicePricing swaps the tier list under the write lock, so readers see the old or the new list.
func (s *MemoryStore) ReplaceServicePricing(ctx context.Context, serviceID string, tiers []model.PricingTier) ([]model.PricingTier, error) {
	stored := copyTiers(tiers)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pricing[serviceID] = stored
	return copyTiers(stored), nil
}

func copyTiers(tiers []model.PricingTier) []model.PricingTier {
	out := make([]model.PricingTier, 0, len(tiers))
	for _, t := range tiers {
		price := t.Price()
		features := append([]string{}, t.Features...)
		out = append(out, model.PricingTier{
			TierName:      t.TierName,
			OriginalPrice: &price,
			DeliveryTime:  t.DeliveryTime,
			Features:      features,
		})
	}
	return out
}

// ListTestimonials returns every testimonial, newest first.
func (s *MemoryStore) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	s.mu.RLock()
	list := make([]model.Testimonial, 0, len(s.testimonials))
	for _, t := range s.testimonials {
		list = append(list, t)
	}
	s.mu.RUnlock()

	// same order as the Postgres query: created_at DESC, id
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// CreateTestimonial stores t. It returns ErrTestimonialExists if the id is taken.
func (s *MemoryStore) CreateTestimonial(ctx context.Context, t *model.Testimonial) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.testimonials[t.ID]; ok {
		return service.ErrTestimonialExists
	}
	s.testimonials[t.ID] = *t
	return nil
}

// DeleteTestimonial removes the testimonial with id. It returns ErrTestimonialNotFound if there is none.
func (s *MemoryStore) DeleteTestimonial(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.testimonials[id]; !ok {
		return service.ErrTestimonialNotFound
	}
	delete(s.testimonials, id)
	return nil
}

// GetUser returns the user with id, or nil if there is none.
func (s *MemoryStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetUserByUsername returns the user with username, or nil if there is none.
func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

// CreateUser assigns user a new ID and stores it. It returns ErrUsernameTaken if the username is already registered.
func (s *MemoryStore) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return service.ErrUsernameTaken
		}
	}
	user.ID = uuid.NewString()
	s.users[user.ID] = *user
	return nil
}
