package pricing

import (
	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeSettings     = "PricingSettings"
	AggregateTypeCustomCharge = "CustomCharge"
)

// Event type constants
const (
	EventTypeSettingsUpdated = "PricingSettingsUpdated"
	EventTypeChargeCreated   = "CustomChargeCreated"
	EventTypeChargeUpdated   = "CustomChargeUpdated"
)

// SettingsUpdatedEvent is published when pricing settings change
type SettingsUpdatedEvent struct {
	shared.BaseDomainEvent
	SettingsID uuid.UUID       `json:"settings_id"`
	TaxPercent decimal.Decimal `json:"tax_percent"`
	AdsPercent decimal.Decimal `json:"ads_percent"`
	OpexType   OpexType        `json:"opex_type"`
	OpexValue  decimal.Decimal `json:"opex_value"`
}

// NewSettingsUpdatedEvent creates a new SettingsUpdatedEvent
func NewSettingsUpdatedEvent(s *Settings) *SettingsUpdatedEvent {
	return &SettingsUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSettingsUpdated, AggregateTypeSettings, s.ID, s.TenantID),
		SettingsID:      s.ID,
		TaxPercent:      s.TaxPercent,
		AdsPercent:      s.AdsPercent,
		OpexType:        s.OpexType,
		OpexValue:       s.OpexValue,
	}
}

// ChargeCreatedEvent is published when a custom charge is created
type ChargeCreatedEvent struct {
	shared.BaseDomainEvent
	ChargeID uuid.UUID       `json:"charge_id"`
	Name     string          `json:"name"`
	Type     ChargeType      `json:"type"`
	Value    decimal.Decimal `json:"value"`
}

// NewChargeCreatedEvent creates a new ChargeCreatedEvent
func NewChargeCreatedEvent(c *CustomCharge) *ChargeCreatedEvent {
	return &ChargeCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeChargeCreated, AggregateTypeCustomCharge, c.ID, c.TenantID),
		ChargeID:        c.ID,
		Name:            c.Name,
		Type:            c.Type,
		Value:           c.Value,
	}
}

// ChargeUpdatedEvent is published when a custom charge is updated
type ChargeUpdatedEvent struct {
	shared.BaseDomainEvent
	ChargeID uuid.UUID       `json:"charge_id"`
	Name     string          `json:"name"`
	Type     ChargeType      `json:"type"`
	Value    decimal.Decimal `json:"value"`
}

// NewChargeUpdatedEvent creates a new ChargeUpdatedEvent
func NewChargeUpdatedEvent(c *CustomCharge) *ChargeUpdatedEvent {
	return &ChargeUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeChargeUpdated, AggregateTypeCustomCharge, c.ID, c.TenantID),
		ChargeID:        c.ID,
		Name:            c.Name,
		Type:            c.Type,
		Value:           c.Value,
	}
}
