package marketplace

import (
	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeMarketplace = "Marketplace"

// Event type constants
const (
	EventTypeMarketplaceCreated       = "MarketplaceCreated"
	EventTypeMarketplaceUpdated       = "MarketplaceUpdated"
	EventTypeMarketplaceFeesChanged   = "MarketplaceFeesChanged"
	EventTypeMarketplaceTiersReplaced = "MarketplaceTiersReplaced"
	EventTypeMarketplaceStatusChanged = "MarketplaceStatusChanged"
)

// FeeSource indicates where a fee change originated
type FeeSource string

const (
	FeeSourceManual FeeSource = "manual"
	FeeSourceSync   FeeSource = "sync"
)

// MarketplaceCreatedEvent is published when a new marketplace is created
type MarketplaceCreatedEvent struct {
	shared.BaseDomainEvent
	MarketplaceID uuid.UUID `json:"marketplace_id"`
	Name          string    `json:"name"`
}

// NewMarketplaceCreatedEvent creates a new MarketplaceCreatedEvent
func NewMarketplaceCreatedEvent(mp *Marketplace) *MarketplaceCreatedEvent {
	return &MarketplaceCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMarketplaceCreated, AggregateTypeMarketplace, mp.ID, mp.TenantID),
		MarketplaceID:   mp.ID,
		Name:            mp.Name,
	}
}

// MarketplaceUpdatedEvent is published when a marketplace is updated
type MarketplaceUpdatedEvent struct {
	shared.BaseDomainEvent
	MarketplaceID uuid.UUID `json:"marketplace_id"`
	Name          string    `json:"name"`
}

// NewMarketplaceUpdatedEvent creates a new MarketplaceUpdatedEvent
func NewMarketplaceUpdatedEvent(mp *Marketplace) *MarketplaceUpdatedEvent {
	return &MarketplaceUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMarketplaceUpdated, AggregateTypeMarketplace, mp.ID, mp.TenantID),
		MarketplaceID:   mp.ID,
		Name:            mp.Name,
	}
}

// MarketplaceFeesChangedEvent is published when the fee structure changes
type MarketplaceFeesChangedEvent struct {
	shared.BaseDomainEvent
	MarketplaceID     uuid.UUID       `json:"marketplace_id"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	FixedFee          decimal.Decimal `json:"fixed_fee"`
	Source            FeeSource       `json:"source"`
}

// NewMarketplaceFeesChangedEvent creates a new MarketplaceFeesChangedEvent
func NewMarketplaceFeesChangedEvent(mp *Marketplace, source FeeSource) *MarketplaceFeesChangedEvent {
	return &MarketplaceFeesChangedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeMarketplaceFeesChanged, AggregateTypeMarketplace, mp.ID, mp.TenantID),
		MarketplaceID:     mp.ID,
		CommissionPercent: mp.CommissionPercent,
		FixedFee:          mp.FixedFee,
		Source:            source,
	}
}

// MarketplaceTiersReplacedEvent is published when the shipping tier table is replaced
type MarketplaceTiersReplacedEvent struct {
	shared.BaseDomainEvent
	MarketplaceID uuid.UUID `json:"marketplace_id"`
	TierCount     int       `json:"tier_count"`
}

// NewMarketplaceTiersReplacedEvent creates a new MarketplaceTiersReplacedEvent
func NewMarketplaceTiersReplacedEvent(mp *Marketplace) *MarketplaceTiersReplacedEvent {
	return &MarketplaceTiersReplacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMarketplaceTiersReplaced, AggregateTypeMarketplace, mp.ID, mp.TenantID),
		MarketplaceID:   mp.ID,
		TierCount:       len(mp.ShippingTiers),
	}
}

// MarketplaceStatusChangedEvent is published when a marketplace's status changes
type MarketplaceStatusChangedEvent struct {
	shared.BaseDomainEvent
	MarketplaceID uuid.UUID         `json:"marketplace_id"`
	OldStatus     MarketplaceStatus `json:"old_status"`
	NewStatus     MarketplaceStatus `json:"new_status"`
}

// NewMarketplaceStatusChangedEvent creates a new MarketplaceStatusChangedEvent
func NewMarketplaceStatusChangedEvent(mp *Marketplace, oldStatus, newStatus MarketplaceStatus) *MarketplaceStatusChangedEvent {
	return &MarketplaceStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMarketplaceStatusChanged, AggregateTypeMarketplace, mp.ID, mp.TenantID),
		MarketplaceID:   mp.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
