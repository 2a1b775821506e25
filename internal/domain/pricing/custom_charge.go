package pricing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ChargeType selects how a custom charge is computed
type ChargeType string

const (
	ChargeTypePercentOfPrice ChargeType = "percent_of_price"
	ChargeTypePercentOfCost  ChargeType = "percent_of_cost"
	ChargeTypeFixed          ChargeType = "fixed"
)

// ChargeStatus represents the status of a custom charge
type ChargeStatus string

const (
	ChargeStatusActive   ChargeStatus = "active"
	ChargeStatusInactive ChargeStatus = "inactive"
)

// CustomCharge is an additional cost line applied to every quote:
// a percentage of the sale price, a percentage of the product cost,
// or a fixed amount.
type CustomCharge struct {
	shared.TenantAggregateRoot
	Name   string          `gorm:"type:varchar(200);not null"`
	Type   ChargeType      `gorm:"type:varchar(30);not null"`
	Value  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Status ChargeStatus    `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (CustomCharge) TableName() string {
	return "custom_charges"
}

// NewCustomCharge creates a new custom charge
func NewCustomCharge(tenantID uuid.UUID, name string, chargeType ChargeType, value decimal.Decimal) (*CustomCharge, error) {
	if err := validateChargeName(name); err != nil {
		return nil, err
	}
	if err := validateChargeValue(chargeType, value); err != nil {
		return nil, err
	}

	charge := &CustomCharge{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                strings.TrimSpace(name),
		Type:                chargeType,
		Value:               value,
		Status:              ChargeStatusActive,
	}

	charge.AddDomainEvent(NewChargeCreatedEvent(charge))

	return charge, nil
}

// Update updates the charge's name, type and value
func (c *CustomCharge) Update(name string, chargeType ChargeType, value decimal.Decimal) error {
	if err := validateChargeName(name); err != nil {
		return err
	}
	if err := validateChargeValue(chargeType, value); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Type = chargeType
	c.Value = value
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewChargeUpdatedEvent(c))

	return nil
}

// Activate activates the charge
func (c *CustomCharge) Activate() error {
	if c.Status == ChargeStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Charge is already active")
	}

	c.Status = ChargeStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Deactivate deactivates the charge
func (c *CustomCharge) Deactivate() error {
	if c.Status == ChargeStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Charge is already inactive")
	}

	c.Status = ChargeStatusInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// IsActive returns true if the charge is active
func (c *CustomCharge) IsActive() bool {
	return c.Status == ChargeStatusActive
}

func validateChargeName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Charge name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Charge name cannot exceed 200 characters")
	}
	return nil
}

func validateChargeValue(chargeType ChargeType, value decimal.Decimal) error {
	switch chargeType {
	case ChargeTypePercentOfPrice, ChargeTypePercentOfCost:
		return validatePercentRange("Charge percent", value)
	case ChargeTypeFixed:
		if value.IsNegative() {
			return shared.NewDomainError("INVALID_CHARGE", "Fixed charge cannot be negative")
		}
		return nil
	default:
		return shared.NewDomainError("INVALID_CHARGE", "Unknown charge type")
	}
}
