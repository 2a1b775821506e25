package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// ComputeQuoteRequest is the external entry point of the pricing engine:
// references are resolved to full records before the calculator runs.
type ComputeQuoteRequest struct {
	ProductID     uuid.UUID              `json:"product_id" binding:"required"`
	MarketplaceID uuid.UUID              `json:"marketplace_id" binding:"required"`
	SalePrice     decimal.Decimal        `json:"sale_price"`
	Overrides     *QuoteOverridesRequest `json:"overrides"`
}

// QuoteOverridesRequest carries the per-call parameter overrides
type QuoteOverridesRequest struct {
	TaxPercent *decimal.Decimal        `json:"tax_percent"`
	AdsPercent *decimal.Decimal        `json:"ads_percent"`
	OpexType   *string                 `json:"opex_type" binding:"omitempty,oneof=percent fixed"`
	OpexValue  *decimal.Decimal        `json:"opex_value"`
	Charges    []ChargeOverrideRequest `json:"charges" binding:"omitempty,dive"`
}

// ChargeOverrideRequest overrides one custom charge for a single quote
type ChargeOverrideRequest struct {
	ChargeID uuid.UUID        `json:"charge_id" binding:"required"`
	Value    *decimal.Decimal `json:"value"`
	IsActive *bool            `json:"is_active"`
}

// QuoteResponse wraps the computed quote with the references it was
// computed against
type QuoteResponse struct {
	ProductID     uuid.UUID `json:"product_id"`
	MarketplaceID uuid.UUID `json:"marketplace_id"`
	pricing.Quote
}

// UpdateSettingsRequest replaces the tenant's pricing parameters
type UpdateSettingsRequest struct {
	TaxPercent             decimal.Decimal `json:"tax_percent"`
	AdsPercent             decimal.Decimal `json:"ads_percent"`
	OpexType               string          `json:"opex_type" binding:"required,oneof=percent fixed"`
	OpexValue              decimal.Decimal `json:"opex_value"`
	MinMarginTargetPercent decimal.Decimal `json:"min_margin_target_percent"`
}

// SettingsResponse represents pricing settings in API responses
type SettingsResponse struct {
	TaxPercent             decimal.Decimal `json:"tax_percent"`
	AdsPercent             decimal.Decimal `json:"ads_percent"`
	OpexType               string          `json:"opex_type"`
	OpexValue              decimal.Decimal `json:"opex_value"`
	MinMarginTargetPercent decimal.Decimal `json:"min_margin_target_percent"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// NewSettingsResponse maps a settings aggregate to its response DTO
func NewSettingsResponse(s *pricing.Settings) *SettingsResponse {
	return &SettingsResponse{
		TaxPercent:             s.TaxPercent,
		AdsPercent:             s.AdsPercent,
		OpexType:               string(s.OpexType),
		OpexValue:              s.OpexValue,
		MinMarginTargetPercent: s.MinMarginTargetPercent,
		UpdatedAt:              s.UpdatedAt,
	}
}

// CreateChargeRequest represents a request to create a custom charge
type CreateChargeRequest struct {
	Name  string          `json:"name" binding:"required,min=1,max=200"`
	Type  string          `json:"type" binding:"required,oneof=percent_of_price percent_of_cost fixed"`
	Value decimal.Decimal `json:"value"`
}

// UpdateChargeRequest represents a request to update a custom charge
type UpdateChargeRequest struct {
	Name  *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Type  *string          `json:"type" binding:"omitempty,oneof=percent_of_price percent_of_cost fixed"`
	Value *decimal.Decimal `json:"value"`
}

// ChargeResponse represents a custom charge in API responses
type ChargeResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Value     decimal.Decimal `json:"value"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Version   int             `json:"version"`
}

// NewChargeResponse maps a custom charge aggregate to its response DTO
func NewChargeResponse(c *pricing.CustomCharge) *ChargeResponse {
	return &ChargeResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      string(c.Type),
		Value:     c.Value,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Version:   c.GetVersion(),
	}
}
