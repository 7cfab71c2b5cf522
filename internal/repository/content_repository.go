package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
)

// SiteContentRepository provides data access for the singleton content records.
// Each table holds at most one row, pinned to id 1.
type SiteContentRepository struct {
	pool PoolInterface
}

// NewSiteContentRepository creates a new SiteContentRepository with the given pool.
func NewSiteContentRepository(pool *pgxpool.Pool) *SiteContentRepository {
	return &SiteContentRepository{pool: pool}
}

// NewSiteContentRepositoryWithPool creates a new SiteContentRepository with a custom pool interface.
func NewSiteContentRepositoryWithPool(pool PoolInterface) *SiteContentRepository {
	return &SiteContentRepository{pool: pool}
}

// GetContactInfo returns nil, nil if contact info was never saved.
func (r *SiteContentRepository) GetContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	query := `SELECT whatsapp_number, phone, email, location, business_hours, updated_at FROM contact_info WHERE id = 1`

	info, err := scanContactInfo(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact info: %w", err)
	}
	return info, nil
}

// SaveContactInfo upserts the contact info row and returns it as stored.
func (r *SiteContentRepository) SaveContactInfo(ctx context.Context, info *model.ContactInfo) (*model.ContactInfo, error) {
	query := `INSERT INTO contact_info (id, whatsapp_number, phone, email, location, business_hours, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			whatsapp_number = EXCLUDED.whatsapp_number,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			location = EXCLUDED.location,
			business_hours = EXCLUDED.business_hours,
			updated_at = EXCLUDED.updated_at
		RETURNING whatsapp_number, phone, email, location, business_hours, updated_at`

	saved, err := scanContactInfo(r.pool.QueryRow(ctx, query,
		info.WhatsAppNumber, info.Phone, info.Email, info.Location, info.BusinessHours))
	if err != nil {
		return nil, fmt.Errorf("save contact info: %w", err)
	}
	return saved, nil
}

func scanContactInfo(row pgx.Row) (*model.ContactInfo, error) {
	var info model.ContactInfo
	err := row.Scan(
		&info.WhatsAppNumber,
		&info.Phone,
		&info.Email,
		&info.Location,
		&info.BusinessHours,
		&info.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// GetAboutInfo returns nil, nil if the about page was never saved.
func (r *SiteContentRepository) GetAboutInfo(ctx context.Context) (*model.AboutInfo, error) {
	query := `SELECT about_text, mission_text, picture_url, updated_at FROM about_info WHERE id = 1`

	var info model.AboutInfo
	err := r.pool.QueryRow(ctx, query).Scan(&info.AboutText, &info.MissionText, &info.PictureURL, &info.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get about info: %w", err)
	}
	return &info, nil
}

// SaveAboutInfo upserts the about page row and returns it as stored.
func (r *SiteContentRepository) SaveAboutInfo(ctx context.Context, info *model.AboutInfo) (*model.AboutInfo, error) {
	query := `INSERT INTO about_info (id, about_text, mission_text, picture_url, updated_at)
		VALUES (1, $1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE SET
			about_text = EXCLUDED.about_text,
			mission_text = EXCLUDED.mission_text,
			picture_url = EXCLUDED.picture_url,
			updated_at = EXCLUDED.updated_at
		RETURNING about_text, mission_text, picture_url, updated_at`

	var saved model.AboutInfo
	err := r.pool.QueryRow(ctx, query, info.AboutText, info.MissionText, info.PictureURL).
		Scan(&saved.AboutText, &saved.MissionText, &saved.PictureURL, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("save about info: %w", err)
	}
	return &saved, nil
}

// GetHomeInfo returns nil, nil if the home page was never saved.
func (r *SiteContentRepository) GetHomeInfo(ctx context.Context) (*model.HomeInfo, error) {
	query := `SELECT demo_video_url, updated_at FROM home_info WHERE id = 1`

	var info model.HomeInfo
	err := r.pool.QueryRow(ctx, query).Scan(&info.DemoVideoURL, &info.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get home info: %w", err)
	}
	return &info, nil
}

// SaveHomeInfo upserts the home page row and returns it as stored.
func (r *SiteContentRepository) SaveHomeInfo(ctx context.Context, info *model.HomeInfo) (*model.HomeInfo, error) {
	query := `INSERT INTO home_info (id, demo_video_url, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET
			demo_video_url = EXCLUDED.demo_video_url,
			updated_at = EXCLUDED.updated_at
		RETURNING demo_video_url, updated_at`

	var saved model.HomeInfo
	err := r.pool.QueryRow(ctx, query, info.DemoVideoURL).Scan(&saved.DemoVideoURL, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("save home info: %w", err)
	}
	return &saved, nil
}
