package pricing

import (
	"context"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/catalog"
	"github.com/precify/backend/internal/domain/marketplace"
	"github.com/precify/backend/internal/domain/pricing"
	"github.com/precify/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDWithComposition(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (bool, error) {
	args := m.Called(ctx, tenantID, sku)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, entity *catalog.Product) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockMaterialRepository is a mock implementation of catalog.MaterialRepository
type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Material), args.Error(1)
}

func (m *MockMaterialRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Material, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Material), args.Error(1)
}

func (m *MockMaterialRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Material, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Material), args.Error(1)
}

func (m *MockMaterialRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catalog.Material, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]catalog.Material), args.Error(1)
}

func (m *MockMaterialRepository) FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]catalog.Material, error) {
	args := m.Called(ctx, tenantID, ids)
	return args.Get(0).([]catalog.Material), args.Error(1)
}

func (m *MockMaterialRepository) ExistsByName(ctx context.Context, tenantID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, tenantID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockMaterialRepository) Save(ctx context.Context, entity *catalog.Material) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockMaterialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMaterialRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockMarketplaceRepository is a mock implementation of marketplace.Repository
type MockMarketplaceRepository struct {
	mock.Mock
}

func (m *MockMarketplaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*marketplace.Marketplace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketplace.Marketplace), args.Error(1)
}

func (m *MockMarketplaceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*marketplace.Marketplace, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketplace.Marketplace), args.Error(1)
}

func (m *MockMarketplaceRepository) FindByIDWithTiers(ctx context.Context, tenantID, id uuid.UUID) (*marketplace.Marketplace, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*marketplace.Marketplace), args.Error(1)
}

func (m *MockMarketplaceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]marketplace.Marketplace, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]marketplace.Marketplace), args.Error(1)
}

func (m *MockMarketplaceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]marketplace.Marketplace, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]marketplace.Marketplace), args.Error(1)
}

func (m *MockMarketplaceRepository) ExistsByName(ctx context.Context, tenantID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, tenantID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockMarketplaceRepository) Save(ctx context.Context, entity *marketplace.Marketplace) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockMarketplaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMarketplaceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockSettingsRepository is a mock implementation of pricing.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) (*pricing.Settings, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *pricing.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockChargeRepository is a mock implementation of pricing.CustomChargeRepository
type MockChargeRepository struct {
	mock.Mock
}

func (m *MockChargeRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.CustomCharge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.CustomCharge), args.Error(1)
}

func (m *MockChargeRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*pricing.CustomCharge, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.CustomCharge), args.Error(1)
}

func (m *MockChargeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]pricing.CustomCharge, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]pricing.CustomCharge), args.Error(1)
}

func (m *MockChargeRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]pricing.CustomCharge, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]pricing.CustomCharge), args.Error(1)
}

func (m *MockChargeRepository) FindAllByTenant(ctx context.Context, tenantID uuid.UUID) ([]pricing.CustomCharge, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]pricing.CustomCharge), args.Error(1)
}

func (m *MockChargeRepository) Save(ctx context.Context, entity *pricing.CustomCharge) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockChargeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChargeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}
