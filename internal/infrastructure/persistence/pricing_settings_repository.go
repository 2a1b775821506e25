package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/pricing"
	"github.com/precify/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSettingsRepository implements SettingsRepository using GORM
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// FindByTenant finds the pricing settings record of a tenant
func (r *GormSettingsRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) (*pricing.Settings, error) {
	var settings pricing.Settings
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// Save creates or updates the tenant's pricing settings
func (r *GormSettingsRepository) Save(ctx context.Context, settings *pricing.Settings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

// Ensure GormSettingsRepository implements SettingsRepository
var _ pricing.SettingsRepository = (*GormSettingsRepository)(nil)
