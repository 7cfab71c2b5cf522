package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
)

// PromoService provides business logic for the monthly promo slot counter.
type PromoService struct {
	repo PromoRepositoryInterface
	loc  *time.Location
}

// NewPromoService creates a PromoService that derives calendar months in loc.
// A nil loc means UTC.
func NewPromoService(repo PromoRepositoryInterface, loc *time.Location) *PromoService {
	if loc == nil {
		loc = time.UTC
	}
	return &PromoService{repo: repo, loc: loc}
}

// monthYear returns the zero-based month and the year of now in the service location.
func (s *PromoService) monthYear(now time.Time) (int, int) {
	local := now.In(s.loc)
	return int(local.Month()) - 1, local.Year()
}

// GetStatus returns the promo status of the month containing now.
// The first read of a month creates its record with model.DefaultPromoSlots.
func (s *PromoService) GetStatus(ctx context.Context, now time.Time) (*model.PromoStatusResponse, error) {
	month, year := s.monthYear(now)

	status, err := s.repo.GetPromoStatus(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("get promo status: %w", err)
	}
	if status != nil {
		return toPromoResponse(status), nil
	}

	status = &model.PromoStatus{
		Month:          month,
		Year:           year,
		SlotsRemaining: model.DefaultPromoSlots,
		LastUpdated:    now,
	}
	err = s.repo.CreatePromoStatus(ctx, status)
	if err == nil {
		return toPromoResponse(status), nil
	}
	if !errors.Is(err, ErrPromoStatusExists) {
		return nil, fmt.Errorf("create promo status: %w", err)
	}

	// Another request created the month first; use its record.
	status, err = s.repo.GetPromoStatus(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("get promo status: %w", err)
	}
	if status == nil {
		return nil, fmt.Errorf("promo status %d-%d vanished after create conflict", year, month)
	}
	return toPromoResponse(status), nil
}

// SetSlots overwrites the slot count of the month containing now.
// Returns ErrInvalidSlots if slots is negative or above model.MaxStoredInt. Concurrent writers race; the last one wins.
func (s *PromoService) SetSlots(ctx context.Context, now time.Time, slots int) (*model.PromoStatusResponse, error) {
	if slots < 0 || slots > model.MaxStoredInt {
		return nil, ErrInvalidSlots
	}
	month, year := s.monthYear(now)

	status := &model.PromoStatus{
		Month:          month,
		Year:           year,
		SlotsRemaining: slots,
		LastUpdated:    now,
	}
	if err := s.repo.UpsertPromoStatus(ctx, status); err != nil {
		return nil, fmt.Errorf("upsert promo status: %w", err)
	}
	return toPromoResponse(status), nil
}

func toPromoResponse(status *model.PromoStatus) *model.PromoStatusResponse {
	return &model.PromoStatusResponse{
		SlotsRemaining: status.SlotsRemaining,
		PromoActive:    status.Active(),
		Month:          status.Month,
		Year:           status.Year,
	}
}
