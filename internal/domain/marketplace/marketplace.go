package marketplace

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MarketplaceStatus represents the status of a marketplace
type MarketplaceStatus string

const (
	MarketplaceStatusActive   MarketplaceStatus = "active"
	MarketplaceStatusInactive MarketplaceStatus = "inactive"
)

// Platform identifies an external selling platform a marketplace can
// be bound to for automatic fee synchronization
type Platform string

const (
	PlatformMercadoLivre Platform = "mercadolivre"
)

// Marketplace represents a selling channel with its fee structure.
// It is the aggregate root for marketplace-related operations and owns
// its shipping tier table.
type Marketplace struct {
	shared.TenantAggregateRoot
	Name              string            `gorm:"type:varchar(200);not null;uniqueIndex:idx_marketplace_tenant_name,priority:2"`
	CommissionPercent decimal.Decimal   `gorm:"type:decimal(9,4);not null;default:0"`
	FixedFee          decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	Status            MarketplaceStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Platform          Platform          `gorm:"type:varchar(50)"`
	PlatformListingID string            `gorm:"type:varchar(100)"`
	LastFeeSyncAt     *time.Time        `gorm:""`
	ShippingTiers     []ShippingTier    `gorm:"foreignKey:MarketplaceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Marketplace) TableName() string {
	return "marketplaces"
}

// ShippingTier is one weight range of a marketplace's shipping table.
// Bounds are inclusive on both ends; tiers of one marketplace must not
// overlap so any weight resolves to at most one tier.
type ShippingTier struct {
	shared.BaseEntity
	MarketplaceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	MinWeightKg   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	MaxWeightKg   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Cost          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (ShippingTier) TableName() string {
	return "shipping_tiers"
}

// Contains returns true if the weight falls inside this tier (inclusive bounds)
func (t ShippingTier) Contains(weightKg decimal.Decimal) bool {
	return weightKg.GreaterThanOrEqual(t.MinWeightKg) && weightKg.LessThanOrEqual(t.MaxWeightKg)
}

// NewMarketplace creates a new marketplace
func NewMarketplace(tenantID uuid.UUID, name string, commissionPercent, fixedFee decimal.Decimal) (*Marketplace, error) {
	if err := validateMarketplaceName(name); err != nil {
		return nil, err
	}
	if err := validateFees(commissionPercent, fixedFee); err != nil {
		return nil, err
	}

	mp := &Marketplace{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                strings.TrimSpace(name),
		CommissionPercent:   commissionPercent,
		FixedFee:            fixedFee,
		Status:              MarketplaceStatusActive,
		ShippingTiers:       make([]ShippingTier, 0),
	}

	mp.AddDomainEvent(NewMarketplaceCreatedEvent(mp))

	return mp, nil
}

// Update updates the marketplace's name
func (m *Marketplace) Update(name string) error {
	if err := validateMarketplaceName(name); err != nil {
		return err
	}

	m.Name = strings.TrimSpace(name)
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	m.AddDomainEvent(NewMarketplaceUpdatedEvent(m))

	return nil
}

// UpdateFees updates the commission percentage and fixed fee
func (m *Marketplace) UpdateFees(commissionPercent, fixedFee decimal.Decimal) error {
	if err := validateFees(commissionPercent, fixedFee); err != nil {
		return err
	}

	m.CommissionPercent = commissionPercent
	m.FixedFee = fixedFee
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	m.AddDomainEvent(NewMarketplaceFeesChangedEvent(m, FeeSourceManual))

	return nil
}

// BindPlatform binds the marketplace to an external platform listing
// so its fees can be synchronized
func (m *Marketplace) BindPlatform(platform Platform, listingID string) error {
	if platform != PlatformMercadoLivre {
		return shared.NewDomainError("UNSUPPORTED_PLATFORM", "Unsupported platform: "+string(platform))
	}
	if strings.TrimSpace(listingID) == "" {
		return shared.NewDomainError("INVALID_LISTING_ID", "Platform listing ID cannot be empty")
	}

	m.Platform = platform
	m.PlatformListingID = strings.TrimSpace(listingID)
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// IsPlatformBound returns true if the marketplace is bound to an external platform
func (m *Marketplace) IsPlatformBound() bool {
	return m.Platform != "" && m.PlatformListingID != ""
}

// ApplySyncedFees applies a fee structure fetched from the bound platform
func (m *Marketplace) ApplySyncedFees(commissionPercent, fixedFee decimal.Decimal, syncedAt time.Time) error {
	if !m.IsPlatformBound() {
		return shared.NewDomainError("NOT_PLATFORM_BOUND", "Marketplace is not bound to a platform")
	}
	if err := validateFees(commissionPercent, fixedFee); err != nil {
		return err
	}

	m.CommissionPercent = commissionPercent
	m.FixedFee = fixedFee
	m.LastFeeSyncAt = &syncedAt
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	m.AddDomainEvent(NewMarketplaceFeesChangedEvent(m, FeeSourceSync))

	return nil
}

// ReplaceShippingTiers replaces the full shipping tier table.
// Each tier needs minWeight < maxWeight and cost >= 0, and no two tiers
// may overlap under inclusive bounds.
func (m *Marketplace) ReplaceShippingTiers(tiers []TierInput) error {
	replacement := make([]ShippingTier, 0, len(tiers))
	for _, in := range tiers {
		if in.MinWeightKg.IsNegative() {
			return shared.NewDomainError("INVALID_TIER", "Tier minimum weight cannot be negative")
		}
		if !in.MinWeightKg.LessThan(in.MaxWeightKg) {
			return shared.NewDomainError("INVALID_TIER", "Tier minimum weight must be less than maximum weight")
		}
		if in.Cost.IsNegative() {
			return shared.NewDomainError("INVALID_TIER", "Tier cost cannot be negative")
		}
		replacement = append(replacement, ShippingTier{
			BaseEntity:    shared.NewBaseEntity(),
			MarketplaceID: m.ID,
			MinWeightKg:   in.MinWeightKg,
			MaxWeightKg:   in.MaxWeightKg,
			Cost:          in.Cost,
		})
	}

	sort.Slice(replacement, func(i, j int) bool {
		return replacement[i].MinWeightKg.LessThan(replacement[j].MinWeightKg)
	})
	for i := 1; i < len(replacement); i++ {
		// Bounds are inclusive, so touching ranges already overlap.
		if !replacement[i].MinWeightKg.GreaterThan(replacement[i-1].MaxWeightKg) {
			return shared.NewDomainError("OVERLAPPING_TIERS", "Shipping tiers must not overlap")
		}
	}

	m.ShippingTiers = replacement
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	m.AddDomainEvent(NewMarketplaceTiersReplacedEvent(m))

	return nil
}

// TierInput is one requested shipping tier row
type TierInput struct {
	MinWeightKg decimal.Decimal
	MaxWeightKg decimal.Decimal
	Cost        decimal.Decimal
}

// Activate activates the marketplace
func (m *Marketplace) Activate() error {
	if m.Status == MarketplaceStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Marketplace is already active")
	}

	oldStatus := m.Status
	m.Status = MarketplaceStatusActive
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	m.AddDomainEvent(NewMarketplaceStatusChangedEvent(m, oldStatus, MarketplaceStatusActive))

	return nil
}

// Deactivate deactivates the marketplace
func (m *Marketplace) Deactivate() error {
	if m.Status == MarketplaceStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Marketplace is already inactive")
	}

	oldStatus := m.Status
	m.Status = MarketplaceStatusInactive
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	m.AddDomainEvent(NewMarketplaceStatusChangedEvent(m, oldStatus, MarketplaceStatusInactive))

	return nil
}

// IsActive returns true if the marketplace is active
func (m *Marketplace) IsActive() bool {
	return m.Status == MarketplaceStatusActive
}

func validateMarketplaceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Marketplace name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Marketplace name cannot exceed 200 characters")
	}
	return nil
}

func validateFees(commissionPercent, fixedFee decimal.Decimal) error {
	if commissionPercent.IsNegative() || commissionPercent.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_COMMISSION", "Commission percent must be between 0 and 100")
	}
	if fixedFee.IsNegative() {
		return shared.NewDomainError("INVALID_FIXED_FEE", "Fixed fee cannot be negative")
	}
	return nil
}
