package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product represents a sellable product in the catalog.
// It is the aggregate root for product-related operations and owns
// its bill of materials as CompositionItem rows.
//
// A product's unit cost comes from DirectCost when set; otherwise it
// is derived from the composition (material unit cost x quantity).
// The precedence is absolute: a set DirectCost always wins, the two
// are never blended.
type Product struct {
	shared.TenantAggregateRoot
	SKU         string            `gorm:"type:varchar(50);not null;uniqueIndex:idx_product_tenant_sku,priority:2"`
	Name        string            `gorm:"type:varchar(200);not null"`
	Description string            `gorm:"type:text"`
	DirectCost  *decimal.Decimal  `gorm:"type:decimal(18,4)"`
	HeightCm    decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	WidthCm     decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	LengthCm    decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	WeightKg    decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	Status      ProductStatus     `gorm:"type:varchar(20);not null;default:'active'"`
	Composition []CompositionItem `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// CompositionItem is one bill-of-materials entry owned by a product
type CompositionItem struct {
	shared.BaseEntity
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	MaterialID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (CompositionItem) TableName() string {
	return "product_composition_items"
}

// NewProduct creates a new product
func NewProduct(tenantID uuid.UUID, sku, name string) (*Product, error) {
	if err := validateProductSKU(sku); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}

	product := &Product{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		SKU:                 strings.ToUpper(strings.TrimSpace(sku)),
		Name:                strings.TrimSpace(name),
		HeightCm:            decimal.Zero,
		WidthCm:             decimal.Zero,
		LengthCm:            decimal.Zero,
		WeightKg:            decimal.Zero,
		Status:              ProductStatusActive,
		Composition:         make([]CompositionItem, 0),
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetDirectCost sets the direct unit cost, which takes precedence
// over the composition-derived cost
func (p *Product) SetDirectCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_DIRECT_COST", "Direct cost cannot be negative")
	}

	p.DirectCost = &cost
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductCostChangedEvent(p))

	return nil
}

// ClearDirectCost removes the direct cost so the composition-derived
// cost applies again
func (p *Product) ClearDirectCost() {
	p.DirectCost = nil
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductCostChangedEvent(p))
}

// HasDirectCost returns true if a direct unit cost is set
func (p *Product) HasDirectCost() bool {
	return p.DirectCost != nil
}

// SetDimensions sets the physical dimensions (cm) and real weight (kg)
func (p *Product) SetDimensions(heightCm, widthCm, lengthCm, weightKg decimal.Decimal) error {
	for _, v := range []decimal.Decimal{heightCm, widthCm, lengthCm, weightKg} {
		if v.IsNegative() {
			return shared.NewDomainError("INVALID_DIMENSIONS", "Dimensions and weight cannot be negative")
		}
	}

	p.HeightCm = heightCm
	p.WidthCm = widthCm
	p.LengthCm = lengthCm
	p.WeightKg = weightKg
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// ReplaceComposition replaces the product's bill of materials.
// Each entry must reference a distinct material with a positive quantity.
func (p *Product) ReplaceComposition(items []CompositionInput) error {
	seen := make(map[uuid.UUID]bool, len(items))
	composition := make([]CompositionItem, 0, len(items))

	for _, item := range items {
		if item.MaterialID == uuid.Nil {
			return shared.NewDomainError("INVALID_COMPOSITION", "Composition entry must reference a material")
		}
		if !item.Quantity.IsPositive() {
			return shared.NewDomainError("INVALID_COMPOSITION", "Composition quantity must be positive")
		}
		if seen[item.MaterialID] {
			return shared.NewDomainError("DUPLICATE_MATERIAL", "Composition references the same material twice")
		}
		seen[item.MaterialID] = true

		composition = append(composition, CompositionItem{
			BaseEntity: shared.NewBaseEntity(),
			ProductID:  p.ID,
			MaterialID: item.MaterialID,
			Quantity:   item.Quantity,
		})
	}

	p.Composition = composition
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductCompositionChangedEvent(p))

	return nil
}

// CompositionInput is one requested bill-of-materials entry
type CompositionInput struct {
	MaterialID uuid.UUID
	Quantity   decimal.Decimal
}

// Activate activates the product
func (p *Product) Activate() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}

	oldStatus := p.Status
	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductStatusChangedEvent(p, oldStatus, ProductStatusActive))

	return nil
}

// Deactivate deactivates the product
func (p *Product) Deactivate() error {
	if p.Status == ProductStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}

	oldStatus := p.Status
	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductStatusChangedEvent(p, oldStatus, ProductStatusInactive))

	return nil
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

func validateProductSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "Product SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "Product SKU cannot exceed 50 characters")
	}
	return nil
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
