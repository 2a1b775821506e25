package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/marketplace"
	"github.com/precify/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormMarketplaceRepository implements marketplace.Repository using GORM
type GormMarketplaceRepository struct {
	db *gorm.DB
}

// NewGormMarketplaceRepository creates a new GormMarketplaceRepository
func NewGormMarketplaceRepository(db *gorm.DB) *GormMarketplaceRepository {
	return &GormMarketplaceRepository{db: db}
}

// FindByID finds a marketplace by its ID
func (r *GormMarketplaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*marketplace.Marketplace, error) {
	var mp marketplace.Marketplace
	if err := r.db.WithContext(ctx).First(&mp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &mp, nil
}

// FindByIDForTenant finds a marketplace by ID within a tenant
func (r *GormMarketplaceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*marketplace.Marketplace, error) {
	var mp marketplace.Marketplace
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&mp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &mp, nil
}

// FindByIDWithTiers loads the marketplace together with its shipping tiers
func (r *GormMarketplaceRepository) FindByIDWithTiers(ctx context.Context, tenantID, id uuid.UUID) (*marketplace.Marketplace, error) {
	var mp marketplace.Marketplace
	if err := r.db.WithContext(ctx).
		Preload("ShippingTiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("min_weight_kg ASC")
		}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&mp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &mp, nil
}

// FindAll finds all marketplaces matching the filter
func (r *GormMarketplaceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]marketplace.Marketplace, error) {
	var marketplaces []marketplace.Marketplace
	query := r.applyFilter(r.db.WithContext(ctx).Model(&marketplace.Marketplace{}), filter)

	if err := query.Find(&marketplaces).Error; err != nil {
		return nil, err
	}
	return marketplaces, nil
}

// FindAllForTenant finds all marketplaces for a tenant
func (r *GormMarketplaceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]marketplace.Marketplace, error) {
	var marketplaces []marketplace.Marketplace
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&marketplace.Marketplace{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&marketplaces).Error; err != nil {
		return nil, err
	}
	return marketplaces, nil
}

// FindPlatformBound returns every active marketplace bound to an
// external platform, across all tenants. Used by the fee sync scheduler.
func (r *GormMarketplaceRepository) FindPlatformBound(ctx context.Context) ([]marketplace.Marketplace, error) {
	var marketplaces []marketplace.Marketplace
	if err := r.db.WithContext(ctx).
		Where("platform <> '' AND status = ?", marketplace.MarketplaceStatusActive).
		Find(&marketplaces).Error; err != nil {
		return nil, err
	}
	return marketplaces, nil
}

// ExistsByName checks if a marketplace with the given name exists in the tenant
func (r *GormMarketplaceRepository) ExistsByName(ctx context.Context, tenantID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&marketplace.Marketplace{}).
		Where("tenant_id = ? AND LOWER(name) = ?", tenantID, strings.ToLower(strings.TrimSpace(name))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a marketplace together with its shipping tiers.
// The tier rows are replaced wholesale so the stored table always
// matches the aggregate.
func (r *GormMarketplaceRepository) Save(ctx context.Context, mp *marketplace.Marketplace) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("ShippingTiers").Save(mp).Error; err != nil {
			return err
		}

		if err := tx.Where("marketplace_id = ?", mp.ID).
			Delete(&marketplace.ShippingTier{}).Error; err != nil {
			return err
		}

		if len(mp.ShippingTiers) > 0 {
			if err := tx.Create(&mp.ShippingTiers).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete deletes a marketplace and its shipping tiers
func (r *GormMarketplaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("marketplace_id = ?", id).
			Delete(&marketplace.ShippingTier{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&marketplace.Marketplace{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts marketplaces matching the filter
func (r *GormMarketplaceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&marketplace.Marketplace{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormMarketplaceRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, MarketplaceSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormMarketplaceRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "platform":
			query = query.Where("platform = ?", value)
		}
	}

	return query
}

// Ensure GormMarketplaceRepository implements marketplace.Repository
var _ marketplace.Repository = (*GormMarketplaceRepository)(nil)
