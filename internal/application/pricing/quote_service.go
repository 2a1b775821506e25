package pricing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/catalog"
	"github.com/precify/backend/internal/domain/marketplace"
	"github.com/precify/backend/internal/domain/pricing"
	"github.com/precify/backend/internal/domain/shared"
)

// QuoteService resolves the referenced records, assembles the snapshot
// and runs the pricing calculator. A missing product or marketplace is
// fatal for the call; everything else surfaces as flags on the quote.
type QuoteService struct {
	productRepo     catalog.ProductRepository
	materialRepo    catalog.MaterialRepository
	marketplaceRepo marketplace.Repository
	settingsRepo    pricing.SettingsRepository
	chargeRepo      pricing.CustomChargeRepository
	calculator      *pricing.Calculator
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(
	productRepo catalog.ProductRepository,
	materialRepo catalog.MaterialRepository,
	marketplaceRepo marketplace.Repository,
	settingsRepo pricing.SettingsRepository,
	chargeRepo pricing.CustomChargeRepository,
) *QuoteService {
	return &QuoteService{
		productRepo:     productRepo,
		materialRepo:    materialRepo,
		marketplaceRepo: marketplaceRepo,
		settingsRepo:    settingsRepo,
		chargeRepo:      chargeRepo,
		calculator:      pricing.NewCalculator(),
	}
}

// ComputeQuote computes a pricing quote for one product on one
// marketplace. A zero sale price is a valid question to ask (the
// minimum-price solve still answers it); a negative one is not.
func (s *QuoteService) ComputeQuote(ctx context.Context, tenantID uuid.UUID, req ComputeQuoteRequest) (*QuoteResponse, error) {
	if req.SalePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_SALE_PRICE", "Sale price cannot be negative")
	}

	product, err := s.productRepo.FindByIDWithComposition(ctx, tenantID, req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	mp, err := s.marketplaceRepo.FindByIDWithTiers(ctx, tenantID, req.MarketplaceID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("MARKETPLACE_NOT_FOUND", "Marketplace not found")
		}
		return nil, err
	}

	var materials []catalog.Material
	if !product.HasDirectCost() && len(product.Composition) > 0 {
		ids := make([]uuid.UUID, 0, len(product.Composition))
		for _, item := range product.Composition {
			ids = append(ids, item.MaterialID)
		}
		materials, err = s.materialRepo.FindByIDs(ctx, tenantID, ids)
		if err != nil {
			return nil, err
		}
	}

	settings, err := s.settingsRepo.FindByTenant(ctx, tenantID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	charges, err := s.chargeRepo.FindAllByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	quote, err := s.calculator.ComputeQuote(pricing.QuoteInput{
		Product:     product,
		Materials:   materials,
		Marketplace: mp,
		Settings:    settings,
		Charges:     charges,
		SalePrice:   req.SalePrice,
		Overrides:   toDomainOverrides(req.Overrides),
	})
	if err != nil {
		return nil, err
	}

	return &QuoteResponse{
		ProductID:     product.ID,
		MarketplaceID: mp.ID,
		Quote:         *quote,
	}, nil
}

func toDomainOverrides(req *QuoteOverridesRequest) pricing.Overrides {
	if req == nil {
		return pricing.Overrides{}
	}

	overrides := pricing.Overrides{
		TaxPercent: req.TaxPercent,
		AdsPercent: req.AdsPercent,
		OpexValue:  req.OpexValue,
	}
	if req.OpexType != nil {
		opexType := pricing.OpexType(*req.OpexType)
		overrides.OpexType = &opexType
	}
	for _, ch := range req.Charges {
		overrides.Charges = append(overrides.Charges, pricing.ChargeOverride{
			ChargeID: ch.ChargeID,
			Value:    ch.Value,
			IsActive: ch.IsActive,
		})
	}
	return overrides
}
