package pricing

import (
	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/catalog"
	"github.com/precify/backend/internal/domain/marketplace"
	"github.com/shopspring/decimal"
)

// QuoteInput is the already-fetched snapshot a quote is computed over.
// The calculator performs no lookups; the application layer resolves
// every reference before invoking it.
type QuoteInput struct {
	Product     *catalog.Product
	Materials   []catalog.Material
	Marketplace *marketplace.Marketplace
	Settings    *Settings
	Charges     []CustomCharge
	SalePrice   decimal.Decimal
	Overrides   Overrides
}

// Overrides carries the per-call parameter overrides. Each field is
// resolved independently: a nil pointer means "use the stored setting".
type Overrides struct {
	TaxPercent *decimal.Decimal
	AdsPercent *decimal.Decimal
	OpexType   *OpexType
	OpexValue  *decimal.Decimal
	Charges    []ChargeOverride
}

// ChargeOverride overrides one custom charge for a single quote.
// Value and IsActive are independent: either may be set without the other.
type ChargeOverride struct {
	ChargeID uuid.UUID
	Value    *decimal.Decimal
	IsActive *bool
}

// Quote is the full result of one pricing computation. It is a pure
// value object recomputed on every call and never persisted.
type Quote struct {
	SalePrice     decimal.Decimal `json:"sale_price"`
	CTM           decimal.Decimal `json:"ctm"`
	MarginValue   decimal.Decimal `json:"margin_value"`
	MarginPercent decimal.Decimal `json:"margin_percent"`

	// MinPrice and TargetPrice are nil when the corresponding
	// unattainable flag is set.
	MinPrice                *decimal.Decimal `json:"min_price,omitempty"`
	MinPriceUnattainable    bool             `json:"min_price_unattainable"`
	TargetPrice             *decimal.Decimal `json:"target_price,omitempty"`
	TargetPriceUnattainable bool             `json:"target_price_unattainable"`

	IsNegativeMargin bool            `json:"is_negative_margin"`
	IsBelowTarget    bool            `json:"is_below_target"`
	MinMarginTarget  decimal.Decimal `json:"min_margin_target"`

	// UnratedWeight is set when no shipping tier covers the considered
	// weight; shipping cost is then 0, never extrapolated.
	UnratedWeight bool `json:"unrated_weight"`
	// MissingMaterialIDs lists composition entries whose material was
	// absent from the snapshot; each contributed zero cost.
	MissingMaterialIDs []uuid.UUID `json:"missing_material_ids,omitempty"`

	Breakdown Breakdown `json:"breakdown"`
}

// Breakdown itemizes every cost component of a quote
type Breakdown struct {
	ProductCost  decimal.Decimal      `json:"product_cost"`
	ShippingCost decimal.Decimal      `json:"shipping_cost"`
	Commission   CommissionBreakdown  `json:"commission"`
	Tax          LevyBreakdown        `json:"tax"`
	Ads          LevyBreakdown        `json:"ads"`
	Opex         OpexBreakdown        `json:"opex"`
	Charges      []ChargeBreakdown    `json:"charges"`
	Dimensions   DimensionalBreakdown `json:"dimensions"`
}

// CommissionBreakdown details the marketplace commission line
type CommissionBreakdown struct {
	Value    decimal.Decimal `json:"value"`
	Percent  decimal.Decimal `json:"percent"`
	FixedFee decimal.Decimal `json:"fixed_fee"`
}

// LevyBreakdown details a percentage-of-price line (tax, ads)
type LevyBreakdown struct {
	Value   decimal.Decimal `json:"value"`
	Percent decimal.Decimal `json:"percent"`
}

// OpexBreakdown details the operating expense line
type OpexBreakdown struct {
	Value      decimal.Decimal `json:"value"`
	Type       OpexType        `json:"type"`
	InputValue decimal.Decimal `json:"input_value"`
}

// ChargeBreakdown details one active custom charge. Inactive charges
// are omitted from the list entirely.
type ChargeBreakdown struct {
	ChargeID   uuid.UUID       `json:"charge_id"`
	Name       string          `json:"name"`
	Type       ChargeType      `json:"type"`
	InputValue decimal.Decimal `json:"input_value"`
	Value      decimal.Decimal `json:"value"`
}

// DimensionalBreakdown details the weight figures behind the shipping lookup
type DimensionalBreakdown struct {
	HeightCm            decimal.Decimal `json:"height_cm"`
	WidthCm             decimal.Decimal `json:"width_cm"`
	LengthCm            decimal.Decimal `json:"length_cm"`
	RealWeightKg        decimal.Decimal `json:"real_weight_kg"`
	CubicVolume         decimal.Decimal `json:"cubic_volume"`
	DimensionalWeightKg decimal.Decimal `json:"dimensional_weight_kg"`
	ConsideredWeightKg  decimal.Decimal `json:"considered_weight_kg"`
}
