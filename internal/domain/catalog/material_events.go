package catalog

import (
	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeMaterial = "Material"

// Event type constants
const (
	EventTypeMaterialCreated       = "MaterialCreated"
	EventTypeMaterialUpdated       = "MaterialUpdated"
	EventTypeMaterialStatusChanged = "MaterialStatusChanged"
)

// MaterialCreatedEvent is published when a new material is created
type MaterialCreatedEvent struct {
	shared.BaseDomainEvent
	MaterialID uuid.UUID       `json:"material_id"`
	Name       string          `json:"name"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
}

// NewMaterialCreatedEvent creates a new MaterialCreatedEvent
func NewMaterialCreatedEvent(material *Material) *MaterialCreatedEvent {
	return &MaterialCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMaterialCreated, AggregateTypeMaterial, material.ID, material.TenantID),
		MaterialID:      material.ID,
		Name:            material.Name,
		UnitCost:        material.UnitCost,
	}
}

// MaterialUpdatedEvent is published when a material is updated
type MaterialUpdatedEvent struct {
	shared.BaseDomainEvent
	MaterialID uuid.UUID       `json:"material_id"`
	Name       string          `json:"name"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
}

// NewMaterialUpdatedEvent creates a new MaterialUpdatedEvent
func NewMaterialUpdatedEvent(material *Material) *MaterialUpdatedEvent {
	return &MaterialUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMaterialUpdated, AggregateTypeMaterial, material.ID, material.TenantID),
		MaterialID:      material.ID,
		Name:            material.Name,
		UnitCost:        material.UnitCost,
	}
}

// MaterialStatusChangedEvent is published when a material's status changes
type MaterialStatusChangedEvent struct {
	shared.BaseDomainEvent
	MaterialID uuid.UUID      `json:"material_id"`
	OldStatus  MaterialStatus `json:"old_status"`
	NewStatus  MaterialStatus `json:"new_status"`
}

// NewMaterialStatusChangedEvent creates a new MaterialStatusChangedEvent
func NewMaterialStatusChangedEvent(material *Material, oldStatus, newStatus MaterialStatus) *MaterialStatusChangedEvent {
	return &MaterialStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMaterialStatusChanged, AggregateTypeMaterial, material.ID, material.TenantID),
		MaterialID:      material.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
