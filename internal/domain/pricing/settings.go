package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OpexType selects how the operating expense is computed
type OpexType string

const (
	OpexTypePercent OpexType = "percent"
	OpexTypeFixed   OpexType = "fixed"
)

// Settings holds the tenant-wide pricing parameters: tax and advertising
// percentages, operating expense configuration, and the minimum margin
// target. One record exists per tenant; saves are upserts.
type Settings struct {
	shared.TenantAggregateRoot
	TaxPercent             decimal.Decimal `gorm:"type:decimal(9,4);not null;default:0"`
	AdsPercent             decimal.Decimal `gorm:"type:decimal(9,4);not null;default:0"`
	OpexType               OpexType        `gorm:"type:varchar(20);not null;default:'percent'"`
	OpexValue              decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	MinMarginTargetPercent decimal.Decimal `gorm:"type:decimal(9,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Settings) TableName() string {
	return "pricing_settings"
}

// NewSettings creates pricing settings with zeroed defaults for a tenant
func NewSettings(tenantID uuid.UUID) *Settings {
	return &Settings{
		TenantAggregateRoot:    shared.NewTenantAggregateRoot(tenantID),
		TaxPercent:             decimal.Zero,
		AdsPercent:             decimal.Zero,
		OpexType:               OpexTypePercent,
		OpexValue:              decimal.Zero,
		MinMarginTargetPercent: decimal.Zero,
	}
}

// Update replaces all pricing parameters
func (s *Settings) Update(taxPercent, adsPercent decimal.Decimal, opexType OpexType, opexValue, minMarginTarget decimal.Decimal) error {
	if err := validatePercentRange("Tax percent", taxPercent); err != nil {
		return err
	}
	if err := validatePercentRange("Ads percent", adsPercent); err != nil {
		return err
	}
	if err := validateOpex(opexType, opexValue); err != nil {
		return err
	}
	if err := validatePercentRange("Minimum margin target", minMarginTarget); err != nil {
		return err
	}

	s.TaxPercent = taxPercent
	s.AdsPercent = adsPercent
	s.OpexType = opexType
	s.OpexValue = opexValue
	s.MinMarginTargetPercent = minMarginTarget
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSettingsUpdatedEvent(s))

	return nil
}

func validatePercentRange(field string, value decimal.Decimal) error {
	if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_PERCENT", field+" must be between 0 and 100")
	}
	return nil
}

func validateOpex(opexType OpexType, value decimal.Decimal) error {
	switch opexType {
	case OpexTypePercent:
		return validatePercentRange("Opex percent", value)
	case OpexTypeFixed:
		if value.IsNegative() {
			return shared.NewDomainError("INVALID_OPEX", "Fixed opex cannot be negative")
		}
		return nil
	default:
		return shared.NewDomainError("INVALID_OPEX", "Opex type must be percent or fixed")
	}
}
