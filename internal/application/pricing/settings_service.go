package pricing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/pricing"
	"github.com/precify/backend/internal/domain/shared"
)

// SettingsService manages the tenant's single pricing settings record
type SettingsService struct {
	settingsRepo pricing.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo pricing.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get returns the tenant's settings, or zeroed defaults when none exist yet
func (s *SettingsService) Get(ctx context.Context, tenantID uuid.UUID) (*SettingsResponse, error) {
	settings, err := s.settingsRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return NewSettingsResponse(pricing.NewSettings(tenantID)), nil
		}
		return nil, err
	}
	return NewSettingsResponse(settings), nil
}

// Update upserts the tenant's settings record
func (s *SettingsService) Update(ctx context.Context, tenantID uuid.UUID, req UpdateSettingsRequest) (*SettingsResponse, error) {
	settings, err := s.settingsRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		settings = pricing.NewSettings(tenantID)
	}

	if err := settings.Update(
		req.TaxPercent,
		req.AdsPercent,
		pricing.OpexType(req.OpexType),
		req.OpexValue,
		req.MinMarginTargetPercent,
	); err != nil {
		return nil, err
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return NewSettingsResponse(settings), nil
}
