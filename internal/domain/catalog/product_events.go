package catalog

import (
	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeProduct = "Product"

// Event type constants
const (
	EventTypeProductCreated            = "ProductCreated"
	EventTypeProductUpdated            = "ProductUpdated"
	EventTypeProductStatusChanged      = "ProductStatusChanged"
	EventTypeProductCostChanged        = "ProductCostChanged"
	EventTypeProductCompositionChanged = "ProductCompositionChanged"
)

// ProductCreatedEvent is published when a new product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct, product.ID, product.TenantID),
		ProductID:       product.ID,
		SKU:             product.SKU,
		Name:            product.Name,
	}
}

// ProductUpdatedEvent is published when a product is updated
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
}

// NewProductUpdatedEvent creates a new ProductUpdatedEvent
func NewProductUpdatedEvent(product *Product) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductUpdated, AggregateTypeProduct, product.ID, product.TenantID),
		ProductID:       product.ID,
		SKU:             product.SKU,
		Name:            product.Name,
	}
}

// ProductStatusChangedEvent is published when a product's status changes
type ProductStatusChangedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID     `json:"product_id"`
	OldStatus ProductStatus `json:"old_status"`
	NewStatus ProductStatus `json:"new_status"`
}

// NewProductStatusChangedEvent creates a new ProductStatusChangedEvent
func NewProductStatusChangedEvent(product *Product, oldStatus, newStatus ProductStatus) *ProductStatusChangedEvent {
	return &ProductStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductStatusChanged, AggregateTypeProduct, product.ID, product.TenantID),
		ProductID:       product.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// ProductCostChangedEvent is published when a product's direct cost is set or cleared
type ProductCostChangedEvent struct {
	shared.BaseDomainEvent
	ProductID     uuid.UUID `json:"product_id"`
	HasDirectCost bool      `json:"has_direct_cost"`
}

// NewProductCostChangedEvent creates a new ProductCostChangedEvent
func NewProductCostChangedEvent(product *Product) *ProductCostChangedEvent {
	return &ProductCostChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCostChanged, AggregateTypeProduct, product.ID, product.TenantID),
		ProductID:       product.ID,
		HasDirectCost:   product.HasDirectCost(),
	}
}

// ProductCompositionChangedEvent is published when a product's bill of materials is replaced
type ProductCompositionChangedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	ItemCount int       `json:"item_count"`
}

// NewProductCompositionChangedEvent creates a new ProductCompositionChangedEvent
func NewProductCompositionChangedEvent(product *Product) *ProductCompositionChangedEvent {
	return &ProductCompositionChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCompositionChanged, AggregateTypeProduct, product.ID, product.TenantID),
		ProductID:       product.ID,
		ItemCount:       len(product.Composition),
	}
}
