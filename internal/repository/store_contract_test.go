package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
	"github.com/Stanley42442/OptiSolveLabs/internal/service"
)

// runStoreContract checks the behaviour every storage adapter must share.
// store must be empty.
func runStoreContract(t *testing.T, store service.Store) {
	ctx := context.Background()

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, store.Ping(ctx))
	})

	t.Run("promo_create_once", func(t *testing.T) {
		status, err := store.GetPromoStatus(ctx, 4, 2031)
		require.NoError(t, err)
		assert.Nil(t, status)

		first := &model.PromoStatus{Month: 4, Year: 2031, SlotsRemaining: 3, LastUpdated: time.Now().UTC()}
		require.NoError(t, store.CreatePromoStatus(ctx, first))
		assert.ErrorIs(t, store.CreatePromoStatus(ctx, first), service.ErrPromoStatusExists)

		status, err = store.GetPromoStatus(ctx, 4, 2031)
		require.NoError(t, err)
		require.NotNil(t, status)
		assert.Equal(t, 3, status.SlotsRemaining)
	})

	t.Run("promo_upsert_last_writer_wins", func(t *testing.T) {
		require.NoError(t, store.UpsertPromoStatus(ctx, &model.PromoStatus{Month: 7, Year: 2031, SlotsRemaining: 2, LastUpdated: time.Now()}))
		require.NoError(t, store.UpsertPromoStatus(ctx, &model.PromoStatus{Month: 7, Year: 2031, SlotsRemaining: 0, LastUpdated: time.Now()}))

		status, err := store.GetPromoStatus(ctx, 7, 2031)
		require.NoError(t, err)
		require.NotNil(t, status)
		assert.Equal(t, 0, status.SlotsRemaining)
		assert.False(t, status.Active())
	})

	t.Run("promo_concurrent_create_single_winner", func(t *testing.T) {
		var wg sync.WaitGroup
		results := make(chan error, 10)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- store.CreatePromoStatus(ctx, &model.PromoStatus{Month: 9, Year: 2031, SlotsRemaining: 3, LastUpdated: time.Now()})
			}()
		}
		wg.Wait()
		close(results)

		created := 0
		for err := range results {
			if err == nil {
				created++
				continue
			}
			assert.ErrorIs(t, err, service.ErrPromoStatusExists)
		}
		assert.Equal(t, 1, created)
	})

	t.Run("singletons", func(t *testing.T) {
		info, err := store.GetContactInfo(ctx)
		require.NoError(t, err)
		assert.Nil(t, info)

		_, err = store.SaveContactInfo(ctx, &model.ContactInfo{WhatsAppNumber: "+1", Email: "a@b.c"})
		require.NoError(t, err)
		saved, err := store.SaveContactInfo(ctx, &model.ContactInfo{WhatsAppNumber: "+2", Email: "x@y.z", Location: "Lagos"})
		require.NoError(t, err)
		assert.Equal(t, "+2", saved.WhatsAppNumber)
		assert.False(t, saved.UpdatedAt.IsZero())

		info, err = store.GetContactInfo(ctx)
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, "+2", info.WhatsAppNumber)
		assert.Equal(t, "Lagos", info.Location)

		about, err := store.SaveAboutInfo(ctx, &model.AboutInfo{AboutText: "About us"})
		require.NoError(t, err)
		assert.Equal(t, "About us", about.AboutText)

		home, err := store.SaveHomeInfo(ctx, &model.HomeInfo{DemoVideoURL: "https://video.example.com/demo"})
		require.NoError(t, err)
		got, err := store.GetHomeInfo(ctx)
		require.NoError(t, err)
		assert.Equal(t, home.DemoVideoURL, got.DemoVideoURL)
	})

	t.Run("service_images", func(t *testing.T) {
		_, err := store.SaveServiceImages(ctx, &model.ServiceImages{ServiceID: "menu-fix", BeforeImageURL: "https://a/1", AfterImageURL: "https://a/2"})
		require.NoError(t, err)
		_, err = store.SaveServiceImages(ctx, &model.ServiceImages{ServiceID: "menu-fix", BeforeImageURL: "https://b/1", AfterImageURL: "https://b/2"})
		require.NoError(t, err)

		images, err := store.GetServiceImages(ctx, "menu-fix")
		require.NoError(t, err)
		require.NotNil(t, images)
		assert.Equal(t, "https://b/1", images.BeforeImageURL)

		images, err = store.GetServiceImages(ctx, "form-fix")
		require.NoError(t, err)
		assert.Nil(t, images)
	})

	t.Run("pricing_full_replace", func(t *testing.T) {
		tiers, err := store.GetServicePricing(ctx, "whatsapp-button")
		require.NoError(t, err)
		assert.Empty(t, tiers)

		price := 100
		_, err = store.ReplaceServicePricing(ctx, "whatsapp-button", []model.PricingTier{
			{TierName: "A", OriginalPrice: &price, DeliveryTime: "1d", Features: []string{"x"}},
			{TierName: "B", OriginalPrice: &price, DeliveryTime: "2d", Features: []string{"y", "z"}},
		})
		require.NoError(t, err)

		other := 300
		replacement := []model.PricingTier{
			{TierName: "Only", OriginalPrice: &other, DeliveryTime: "3d", Features: []string{"q"}},
		}
		saved, err := store.ReplaceServicePricing(ctx, "whatsapp-button", replacement)
		require.NoError(t, err)

		tiers, err = store.GetServicePricing(ctx, "whatsapp-button")
		require.NoError(t, err)
		assert.Equal(t, saved, tiers)
		require.Len(t, tiers, 1)
		assert.Equal(t, "Only", tiers[0].TierName)
		assert.Equal(t, 300, tiers[0].Price())
		assert.Equal(t, []string{"q"}, tiers[0].Features)

		_, err = store.ReplaceServicePricing(ctx, "whatsapp-button", []model.PricingTier{})
		require.NoError(t, err)
		tiers, err = store.GetServicePricing(ctx, "whatsapp-button")
		require.NoError(t, err)
		assert.Empty(t, tiers)
	})

	t.Run("testimonials", func(t *testing.T) {
		base := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, store.CreateTestimonial(ctx, &model.Testimonial{ID: "old", Name: "A", Rating: 4, CreatedAt: base}))
		require.NoError(t, store.CreateTestimonial(ctx, &model.Testimonial{ID: "new", Name: "B", Rating: 5, CreatedAt: base.Add(time.Hour)}))
		assert.ErrorIs(t, store.CreateTestimonial(ctx, &model.Testimonial{ID: "new", Name: "C", Rating: 1, CreatedAt: base}), service.ErrTestimonialExists)

		list, err := store.ListTestimonials(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "new", list[0].ID)
		assert.Equal(t, "old", list[1].ID)

		require.NoError(t, store.DeleteTestimonial(ctx, "old"))
		assert.ErrorIs(t, store.DeleteTestimonial(ctx, "old"), service.ErrTestimonialNotFound)

		list, err = store.ListTestimonials(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "B", list[0].Name)
	})

	t.Run("users", func(t *testing.T) {
		user := &model.User{Username: "owner", Password: "pw"}
		require.NoError(t, store.CreateUser(ctx, user))
		assert.NotEmpty(t, user.ID)
		assert.ErrorIs(t, store.CreateUser(ctx, &model.User{Username: "owner", Password: "x"}), service.ErrUsernameTaken)

		byID, err := store.GetUser(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "owner", byID.Username)

		byName, err := store.GetUserByUsername(ctx, "owner")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, user.ID, byName.ID)

		missing, err := store.GetUserByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}
