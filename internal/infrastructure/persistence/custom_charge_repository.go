package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/pricing"
	"github.com/precify/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCustomChargeRepository implements CustomChargeRepository using GORM
type GormCustomChargeRepository struct {
	db *gorm.DB
}

// NewGormCustomChargeRepository creates a new GormCustomChargeRepository
func NewGormCustomChargeRepository(db *gorm.DB) *GormCustomChargeRepository {
	return &GormCustomChargeRepository{db: db}
}

// FindByID finds a custom charge by its ID
func (r *GormCustomChargeRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.CustomCharge, error) {
	var charge pricing.CustomCharge
	if err := r.db.WithContext(ctx).First(&charge, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &charge, nil
}

// FindByIDForTenant finds a custom charge by ID within a tenant
func (r *GormCustomChargeRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*pricing.CustomCharge, error) {
	var charge pricing.CustomCharge
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&charge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &charge, nil
}

// FindAll finds all custom charges matching the filter
func (r *GormCustomChargeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]pricing.CustomCharge, error) {
	var charges []pricing.CustomCharge
	query := r.applyFilter(r.db.WithContext(ctx).Model(&pricing.CustomCharge{}), filter)

	if err := query.Find(&charges).Error; err != nil {
		return nil, err
	}
	return charges, nil
}

// FindAllForTenant finds all custom charges for a tenant
func (r *GormCustomChargeRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]pricing.CustomCharge, error) {
	var charges []pricing.CustomCharge
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&pricing.CustomCharge{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&charges).Error; err != nil {
		return nil, err
	}
	return charges, nil
}

// FindAllByTenant returns every charge of the tenant without pagination
func (r *GormCustomChargeRepository) FindAllByTenant(ctx context.Context, tenantID uuid.UUID) ([]pricing.CustomCharge, error) {
	var charges []pricing.CustomCharge
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&charges).Error; err != nil {
		return nil, err
	}
	return charges, nil
}

// Save creates or updates a custom charge
func (r *GormCustomChargeRepository) Save(ctx context.Context, charge *pricing.CustomCharge) error {
	return r.db.WithContext(ctx).Save(charge).Error
}

// Delete deletes a custom charge
func (r *GormCustomChargeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&pricing.CustomCharge{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts custom charges matching the filter
func (r *GormCustomChargeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&pricing.CustomCharge{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormCustomChargeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ChargeSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormCustomChargeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		}
	}

	return query
}

// Ensure GormCustomChargeRepository implements CustomChargeRepository
var _ pricing.CustomChargeRepository = (*GormCustomChargeRepository)(nil)
