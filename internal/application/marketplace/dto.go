package marketplace

import (
	"time"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/marketplace"
	"github.com/shopspring/decimal"
)

// CreateMarketplaceRequest represents a request to create a marketplace
type CreateMarketplaceRequest struct {
	Name              string          `json:"name" binding:"required,min=1,max=200"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	FixedFee          decimal.Decimal `json:"fixed_fee"`
}

// UpdateMarketplaceRequest represents a request to update a marketplace
type UpdateMarketplaceRequest struct {
	Name              *string          `json:"name" binding:"omitempty,min=1,max=200"`
	CommissionPercent *decimal.Decimal `json:"commission_percent"`
	FixedFee          *decimal.Decimal `json:"fixed_fee"`
}

// TierRequest is one requested shipping tier row
type TierRequest struct {
	MinWeightKg decimal.Decimal `json:"min_weight_kg"`
	MaxWeightKg decimal.Decimal `json:"max_weight_kg"`
	Cost        decimal.Decimal `json:"cost"`
}

// ReplaceTiersRequest replaces a marketplace's shipping tier table
type ReplaceTiersRequest struct {
	Tiers []TierRequest `json:"tiers" binding:"required,dive"`
}

// BindPlatformRequest binds a marketplace to an external platform listing
type BindPlatformRequest struct {
	Platform  string `json:"platform" binding:"required"`
	ListingID string `json:"listing_id" binding:"required"`
}

// SyncFeesRequest triggers a fee sync from the bound platform
type SyncFeesRequest struct {
	ReferencePrice decimal.Decimal `json:"reference_price"`
}

// TierResponse is one shipping tier in API responses
type TierResponse struct {
	ID          uuid.UUID       `json:"id"`
	MinWeightKg decimal.Decimal `json:"min_weight_kg"`
	MaxWeightKg decimal.Decimal `json:"max_weight_kg"`
	Cost        decimal.Decimal `json:"cost"`
}

// MarketplaceResponse represents a marketplace in API responses
type MarketplaceResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	FixedFee          decimal.Decimal `json:"fixed_fee"`
	Status            string          `json:"status"`
	Platform          string          `json:"platform,omitempty"`
	PlatformListingID string          `json:"platform_listing_id,omitempty"`
	LastFeeSyncAt     *time.Time      `json:"last_fee_sync_at,omitempty"`
	ShippingTiers     []TierResponse  `json:"shipping_tiers"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Version           int             `json:"version"`
}

// NewMarketplaceResponse maps a marketplace aggregate to its response DTO
func NewMarketplaceResponse(m *marketplace.Marketplace) *MarketplaceResponse {
	tiers := make([]TierResponse, 0, len(m.ShippingTiers))
	for _, tier := range m.ShippingTiers {
		tiers = append(tiers, TierResponse{
			ID:          tier.ID,
			MinWeightKg: tier.MinWeightKg,
			MaxWeightKg: tier.MaxWeightKg,
			Cost:        tier.Cost,
		})
	}
	return &MarketplaceResponse{
		ID:                m.ID,
		Name:              m.Name,
		CommissionPercent: m.CommissionPercent,
		FixedFee:          m.FixedFee,
		Status:            string(m.Status),
		Platform:          string(m.Platform),
		PlatformListingID: m.PlatformListingID,
		LastFeeSyncAt:     m.LastFeeSyncAt,
		ShippingTiers:     tiers,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		Version:           m.GetVersion(),
	}
}
