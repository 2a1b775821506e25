package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MaterialStatus represents the status of a material
type MaterialStatus string

const (
	MaterialStatusActive   MaterialStatus = "active"
	MaterialStatusInactive MaterialStatus = "inactive"
)

// Material represents a raw material used in product compositions.
// It is the aggregate root for material-related operations.
type Material struct {
	shared.TenantAggregateRoot
	Name     string          `gorm:"type:varchar(200);not null;uniqueIndex:idx_material_tenant_name,priority:2"`
	UnitCost decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status   MaterialStatus  `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Material) TableName() string {
	return "materials"
}

// NewMaterial creates a new material
func NewMaterial(tenantID uuid.UUID, name string, unitCost decimal.Decimal) (*Material, error) {
	if err := validateMaterialName(name); err != nil {
		return nil, err
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_UNIT_COST", "Unit cost cannot be negative")
	}

	material := &Material{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                strings.TrimSpace(name),
		UnitCost:            unitCost,
		Status:              MaterialStatusActive,
	}

	material.AddDomainEvent(NewMaterialCreatedEvent(material))

	return material, nil
}

// Update updates the material's name and unit cost
func (m *Material) Update(name string, unitCost decimal.Decimal) error {
	if err := validateMaterialName(name); err != nil {
		return err
	}
	if unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_UNIT_COST", "Unit cost cannot be negative")
	}

	m.Name = strings.TrimSpace(name)
	m.UnitCost = unitCost
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	m.AddDomainEvent(NewMaterialUpdatedEvent(m))

	return nil
}

// Activate activates the material
func (m *Material) Activate() error {
	if m.Status == MaterialStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Material is already active")
	}

	oldStatus := m.Status
	m.Status = MaterialStatusActive
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	m.AddDomainEvent(NewMaterialStatusChangedEvent(m, oldStatus, MaterialStatusActive))

	return nil
}

// Deactivate deactivates the material
func (m *Material) Deactivate() error {
	if m.Status == MaterialStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Material is already inactive")
	}

	oldStatus := m.Status
	m.Status = MaterialStatusInactive
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	m.AddDomainEvent(NewMaterialStatusChangedEvent(m, oldStatus, MaterialStatusInactive))

	return nil
}

// IsActive returns true if the material is active
func (m *Material) IsActive() bool {
	return m.Status == MaterialStatusActive
}

func validateMaterialName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Material name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Material name cannot exceed 200 characters")
	}
	return nil
}
