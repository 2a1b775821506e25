package pricing

import (
	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/catalog"
	"github.com/precify/backend/internal/domain/marketplace"
	"github.com/precify/backend/internal/domain/shared"
	"github.com/precify/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// DimensionalDivisor is the industry-standard volumetric divisor:
// dimensional weight (kg) = height * width * length (cm) / 6000.
var DimensionalDivisor = decimal.NewFromInt(6000)

var hundred = decimal.NewFromInt(100)

// Calculator computes pricing quotes. It is stateless and safe for
// concurrent use; every call is an independent pure computation over
// the snapshot it receives.
type Calculator struct{}

// NewCalculator creates a pricing calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// ComputeQuote runs the full pricing pipeline: product cost resolution,
// dimensional weight and shipping lookup, fee and levy computation, CTM
// aggregation, margin evaluation, and the minimum price solve.
//
// Missing product or marketplace is fatal. Every other irregular input
// (unrated weight, missing materials, infeasible minimum price) is
// reported as a flag on the returned quote, never as an error.
func (c *Calculator) ComputeQuote(in QuoteInput) (*Quote, error) {
	if in.Product == nil {
		return nil, shared.NewDomainError("PRODUCT_REQUIRED", "Quote requires a product")
	}
	if in.Marketplace == nil {
		return nil, shared.NewDomainError("MARKETPLACE_REQUIRED", "Quote requires a marketplace")
	}

	settings := in.Settings
	if settings == nil {
		settings = &Settings{OpexType: OpexTypePercent}
	}

	productCost, missingMaterials := c.ResolveProductCost(in.Product, in.Materials)
	dims := c.DimensionalFigures(in.Product)
	shippingCost, unrated := c.ResolveShippingCost(in.Marketplace.ShippingTiers, dims.ConsideredWeightKg)

	taxPercent := resolveDecimal(in.Overrides.TaxPercent, settings.TaxPercent)
	adsPercent := resolveDecimal(in.Overrides.AdsPercent, settings.AdsPercent)
	opexType := settings.OpexType
	if in.Overrides.OpexType != nil {
		opexType = *in.Overrides.OpexType
	}
	opexValue := resolveDecimal(in.Overrides.OpexValue, settings.OpexValue)

	commissionValue := percentOf(in.SalePrice, in.Marketplace.CommissionPercent).Add(in.Marketplace.FixedFee)
	taxValue := percentOf(in.SalePrice, taxPercent)
	adsValue := percentOf(in.SalePrice, adsPercent)

	var opexCost decimal.Decimal
	if opexType == OpexTypeFixed {
		opexCost = opexValue
	} else {
		opexCost = percentOf(in.SalePrice, opexValue)
	}

	charges := c.computeCharges(in.Charges, in.Overrides.Charges, in.SalePrice, productCost)

	ctm := productCost.
		Add(shippingCost).
		Add(commissionValue).
		Add(taxValue).
		Add(adsValue).
		Add(opexCost)
	for _, ch := range charges {
		ctm = ctm.Add(ch.Value)
	}

	marginValue, marginPercent := c.EvaluateMargin(in.SalePrice, ctm)

	// Split the cost model into price-independent terms F and the
	// aggregate price-proportional fraction r, then solve P(1-r) = F.
	fixed := productCost.Add(shippingCost).Add(in.Marketplace.FixedFee)
	rate := in.Marketplace.CommissionPercent.Add(taxPercent).Add(adsPercent)
	if opexType == OpexTypeFixed {
		fixed = fixed.Add(opexValue)
	} else {
		rate = rate.Add(opexValue)
	}
	for _, ch := range charges {
		switch ch.Type {
		case ChargeTypePercentOfPrice:
			rate = rate.Add(ch.InputValue)
		default:
			// Fixed and percent-of-cost charges do not depend on the
			// sale price; their computed value goes into F.
			fixed = fixed.Add(ch.Value)
		}
	}
	rateFraction := valueobject.NewPercent(rate).Fraction()

	target := settings.MinMarginTargetPercent
	minPrice, minUnattainable := solveBreakEven(fixed, rateFraction)
	targetPrice, targetUnattainable := solveBreakEven(fixed, rateFraction.Add(valueobject.NewPercent(target).Fraction()))

	return &Quote{
		SalePrice:               in.SalePrice,
		CTM:                     ctm,
		MarginValue:             marginValue,
		MarginPercent:           marginPercent,
		MinPrice:                minPrice,
		MinPriceUnattainable:    minUnattainable,
		TargetPrice:             targetPrice,
		TargetPriceUnattainable: targetUnattainable,
		IsNegativeMargin:        marginValue.IsNegative(),
		IsBelowTarget:           marginPercent.LessThan(target),
		MinMarginTarget:         target,
		UnratedWeight:           unrated,
		MissingMaterialIDs:      missingMaterials,
		Breakdown: Breakdown{
			ProductCost:  productCost,
			ShippingCost: shippingCost,
			Commission: CommissionBreakdown{
				Value:    commissionValue,
				Percent:  in.Marketplace.CommissionPercent,
				FixedFee: in.Marketplace.FixedFee,
			},
			Tax:        LevyBreakdown{Value: taxValue, Percent: taxPercent},
			Ads:        LevyBreakdown{Value: adsValue, Percent: adsPercent},
			Opex:       OpexBreakdown{Value: opexCost, Type: opexType, InputValue: opexValue},
			Charges:    charges,
			Dimensions: dims,
		},
	}, nil
}

// ResolveProductCost determines the per-unit product cost. A set direct
// cost wins unconditionally; otherwise the cost is the sum of material
// unit cost times quantity over the composition. Materials missing from
// the snapshot contribute zero and are reported back for the caller to
// surface as a data-integrity warning.
func (c *Calculator) ResolveProductCost(product *catalog.Product, materials []catalog.Material) (decimal.Decimal, []uuid.UUID) {
	if product.DirectCost != nil {
		return *product.DirectCost, nil
	}

	byID := make(map[uuid.UUID]catalog.Material, len(materials))
	for _, m := range materials {
		byID[m.ID] = m
	}

	cost := decimal.Zero
	var missing []uuid.UUID
	for _, item := range product.Composition {
		material, ok := byID[item.MaterialID]
		if !ok {
			missing = append(missing, item.MaterialID)
			continue
		}
		cost = cost.Add(material.UnitCost.Mul(item.Quantity))
	}
	return cost, missing
}

// DimensionalFigures derives the cubic volume, dimensional weight and
// considered weight from the product's dimensions. Absent values are
// zero, never an error.
func (c *Calculator) DimensionalFigures(product *catalog.Product) DimensionalBreakdown {
	cubic := product.HeightCm.Mul(product.WidthCm).Mul(product.LengthCm)
	dimensional := cubic.Div(DimensionalDivisor)
	considered := product.WeightKg
	if dimensional.GreaterThan(considered) {
		considered = dimensional
	}
	return DimensionalBreakdown{
		HeightCm:            product.HeightCm,
		WidthCm:             product.WidthCm,
		LengthCm:            product.LengthCm,
		RealWeightKg:        product.WeightKg,
		CubicVolume:         cubic,
		DimensionalWeightKg: dimensional,
		ConsideredWeightKg:  considered,
	}
}

// ResolveShippingCost selects the tier containing the considered weight
// (bounds inclusive). When no tier matches the cost is zero and the
// unrated flag is set; shipping is never extrapolated.
func (c *Calculator) ResolveShippingCost(tiers []marketplace.ShippingTier, consideredWeightKg decimal.Decimal) (decimal.Decimal, bool) {
	for _, tier := range tiers {
		if tier.Contains(consideredWeightKg) {
			return tier.Cost, false
		}
	}
	return decimal.Zero, true
}

// EvaluateMargin computes the absolute and percentage margin for a sale
// price against the total cost. A zero sale price reports 0% margin
// rather than dividing by zero.
func (c *Calculator) EvaluateMargin(salePrice, ctm decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	marginValue := salePrice.Sub(ctm)
	if !salePrice.IsPositive() {
		return marginValue, decimal.Zero
	}
	return marginValue, marginValue.Div(salePrice).Mul(hundred)
}

// computeCharges merges per-call overrides into the stored charge list
// and evaluates each resulting active charge. A charge inactive after
// override merging is excluded from the result entirely.
func (c *Calculator) computeCharges(charges []CustomCharge, overrides []ChargeOverride, salePrice, productCost decimal.Decimal) []ChargeBreakdown {
	overrideByID := make(map[uuid.UUID]ChargeOverride, len(overrides))
	for _, o := range overrides {
		overrideByID[o.ChargeID] = o
	}

	result := make([]ChargeBreakdown, 0, len(charges))
	for _, charge := range charges {
		active := charge.IsActive()
		value := charge.Value
		if o, ok := overrideByID[charge.ID]; ok {
			if o.IsActive != nil {
				active = *o.IsActive
			}
			if o.Value != nil {
				value = *o.Value
			}
		}
		if !active {
			continue
		}

		var computed decimal.Decimal
		switch charge.Type {
		case ChargeTypePercentOfPrice:
			computed = percentOf(salePrice, value)
		case ChargeTypePercentOfCost:
			computed = percentOf(productCost, value)
		default:
			computed = value
		}

		result = append(result, ChargeBreakdown{
			ChargeID:   charge.ID,
			Name:       charge.Name,
			Type:       charge.Type,
			InputValue: value,
			Value:      computed,
		})
	}
	return result
}

// solveBreakEven solves P(1-r) = F for P. When r >= 1 the percent
// terms consume the whole price and no finite solution exists; the
// caller gets a nil price and the unattainable flag instead of a
// negative or infinite value.
func solveBreakEven(fixed, rate decimal.Decimal) (*decimal.Decimal, bool) {
	denominator := decimal.NewFromInt(1).Sub(rate)
	if !denominator.IsPositive() {
		return nil, true
	}
	price := fixed.Div(denominator)
	return &price, false
}

func percentOf(base, percent decimal.Decimal) decimal.Decimal {
	return valueobject.NewPercent(percent).ApplyTo(base)
}

func resolveDecimal(override *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if override != nil {
		return *override
	}
	return fallback
}
