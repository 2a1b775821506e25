package marketplace

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/marketplace"
	"github.com/precify/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MarketplaceService handles marketplace-related business operations
type MarketplaceService struct {
	repo         marketplace.Repository
	feeProviders map[marketplace.Platform]marketplace.FeeProvider
}

// NewMarketplaceService creates a new MarketplaceService
func NewMarketplaceService(repo marketplace.Repository, providers ...marketplace.FeeProvider) *MarketplaceService {
	byPlatform := make(map[marketplace.Platform]marketplace.FeeProvider, len(providers))
	for _, p := range providers {
		byPlatform[p.Platform()] = p
	}
	return &MarketplaceService{
		repo:         repo,
		feeProviders: byPlatform,
	}
}

// Create creates a new marketplace
func (s *MarketplaceService) Create(ctx context.Context, tenantID uuid.UUID, req CreateMarketplaceRequest) (*MarketplaceResponse, error) {
	exists, err := s.repo.ExistsByName(ctx, tenantID, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Marketplace with this name already exists")
	}

	mp, err := marketplace.NewMarketplace(tenantID, req.Name, req.CommissionPercent, req.FixedFee)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, mp); err != nil {
		return nil, err
	}

	return NewMarketplaceResponse(mp), nil
}

// GetByID returns a marketplace by ID including its shipping tiers
func (s *MarketplaceService) GetByID(ctx context.Context, tenantID, marketplaceID uuid.UUID) (*MarketplaceResponse, error) {
	mp, err := s.repo.FindByIDWithTiers(ctx, tenantID, marketplaceID)
	if err != nil {
		return nil, err
	}
	return NewMarketplaceResponse(mp), nil
}

// List returns marketplaces matching the filter
func (s *MarketplaceService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]MarketplaceResponse, int64, error) {
	marketplaces, err := s.repo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]MarketplaceResponse, 0, len(marketplaces))
	for i := range marketplaces {
		responses = append(responses, *NewMarketplaceResponse(&marketplaces[i]))
	}
	return responses, total, nil
}

// Update updates a marketplace's name and/or fee structure
func (s *MarketplaceService) Update(ctx context.Context, tenantID, marketplaceID uuid.UUID, req UpdateMarketplaceRequest) (*MarketplaceResponse, error) {
	mp, err := s.repo.FindByIDWithTiers(ctx, tenantID, marketplaceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := mp.Update(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.CommissionPercent != nil || req.FixedFee != nil {
		commission := mp.CommissionPercent
		if req.CommissionPercent != nil {
			commission = *req.CommissionPercent
		}
		fixedFee := mp.FixedFee
		if req.FixedFee != nil {
			fixedFee = *req.FixedFee
		}
		if err := mp.UpdateFees(commission, fixedFee); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, mp); err != nil {
		return nil, err
	}

	return NewMarketplaceResponse(mp), nil
}

// ReplaceTiers replaces the marketplace's shipping tier table
func (s *MarketplaceService) ReplaceTiers(ctx context.Context, tenantID, marketplaceID uuid.UUID, req ReplaceTiersRequest) (*MarketplaceResponse, error) {
	mp, err := s.repo.FindByIDWithTiers(ctx, tenantID, marketplaceID)
	if err != nil {
		return nil, err
	}

	inputs := make([]marketplace.TierInput, 0, len(req.Tiers))
	for _, tier := range req.Tiers {
		inputs = append(inputs, marketplace.TierInput{
			MinWeightKg: tier.MinWeightKg,
			MaxWeightKg: tier.MaxWeightKg,
			Cost:        tier.Cost,
		})
	}

	if err := mp.ReplaceShippingTiers(inputs); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, mp); err != nil {
		return nil, err
	}

	return NewMarketplaceResponse(mp), nil
}

// BindPlatform binds the marketplace to an external platform listing
func (s *MarketplaceService) BindPlatform(ctx context.Context, tenantID, marketplaceID uuid.UUID, req BindPlatformRequest) (*MarketplaceResponse, error) {
	mp, err := s.repo.FindByIDWithTiers(ctx, tenantID, marketplaceID)
	if err != nil {
		return nil, err
	}

	if err := mp.BindPlatform(marketplace.Platform(req.Platform), req.ListingID); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, mp); err != nil {
		return nil, err
	}

	return NewMarketplaceResponse(mp), nil
}

// SyncFees fetches the current fee structure from the bound platform
// and applies it to the marketplace
func (s *MarketplaceService) SyncFees(ctx context.Context, tenantID, marketplaceID uuid.UUID, req SyncFeesRequest) (*MarketplaceResponse, error) {
	mp, err := s.repo.FindByIDWithTiers(ctx, tenantID, marketplaceID)
	if err != nil {
		return nil, err
	}
	if !mp.IsPlatformBound() {
		return nil, shared.NewDomainError("NOT_PLATFORM_BOUND", "Marketplace is not bound to a platform")
	}

	provider, ok := s.feeProviders[mp.Platform]
	if !ok {
		return nil, shared.NewDomainError("UNSUPPORTED_PLATFORM", "No fee provider configured for platform "+string(mp.Platform))
	}

	referencePrice := req.ReferencePrice
	if referencePrice.IsZero() {
		referencePrice = decimal.NewFromInt(100)
	}

	fees, err := provider.ListingFees(ctx, mp.PlatformListingID, referencePrice)
	if err != nil {
		return nil, err
	}

	if err := mp.ApplySyncedFees(fees.CommissionPercent, fees.FixedFee.Amount(), time.Now()); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, mp); err != nil {
		return nil, err
	}

	return NewMarketplaceResponse(mp), nil
}

// Activate activates a marketplace
func (s *MarketplaceService) Activate(ctx context.Context, tenantID, marketplaceID uuid.UUID) (*MarketplaceResponse, error) {
	return s.transition(ctx, tenantID, marketplaceID, (*marketplace.Marketplace).Activate)
}

// Deactivate deactivates a marketplace
func (s *MarketplaceService) Deactivate(ctx context.Context, tenantID, marketplaceID uuid.UUID) (*MarketplaceResponse, error) {
	return s.transition(ctx, tenantID, marketplaceID, (*marketplace.Marketplace).Deactivate)
}

func (s *MarketplaceService) transition(ctx context.Context, tenantID, marketplaceID uuid.UUID, op func(*marketplace.Marketplace) error) (*MarketplaceResponse, error) {
	mp, err := s.repo.FindByIDForTenant(ctx, tenantID, marketplaceID)
	if err != nil {
		return nil, err
	}
	if err := op(mp); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, mp); err != nil {
		return nil, err
	}
	return NewMarketplaceResponse(mp), nil
}

// Delete removes a marketplace
func (s *MarketplaceService) Delete(ctx context.Context, tenantID, marketplaceID uuid.UUID) error {
	if _, err := s.repo.FindByIDForTenant(ctx, tenantID, marketplaceID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, marketplaceID)
}
