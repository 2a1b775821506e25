package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateMaterialRequest represents a request to create a new material
type CreateMaterialRequest struct {
	Name     string          `json:"name" binding:"required,min=1,max=200"`
	UnitCost decimal.Decimal `json:"unit_cost" binding:"required"`
}

// UpdateMaterialRequest represents a request to update a material
type UpdateMaterialRequest struct {
	Name     *string          `json:"name" binding:"omitempty,min=1,max=200"`
	UnitCost *decimal.Decimal `json:"unit_cost"`
}

// MaterialResponse represents a material in API responses
type MaterialResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Version   int             `json:"version"`
}

// NewMaterialResponse maps a material aggregate to its response DTO
func NewMaterialResponse(m *catalog.Material) *MaterialResponse {
	return &MaterialResponse{
		ID:        m.ID,
		Name:      m.Name,
		UnitCost:  m.UnitCost,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Version:   m.GetVersion(),
	}
}

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	SKU         string           `json:"sku" binding:"required,min=1,max=50"`
	Name        string           `json:"name" binding:"required,min=1,max=200"`
	Description string           `json:"description" binding:"max=2000"`
	DirectCost  *decimal.Decimal `json:"direct_cost"`
	HeightCm    *decimal.Decimal `json:"height_cm"`
	WidthCm     *decimal.Decimal `json:"width_cm"`
	LengthCm    *decimal.Decimal `json:"length_cm"`
	WeightKg    *decimal.Decimal `json:"weight_kg"`
}

// UpdateProductRequest represents a request to update a product.
// DirectCost semantics: nil leaves the stored value untouched;
// ClearDirectCost removes it.
type UpdateProductRequest struct {
	Name            *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description     *string          `json:"description" binding:"omitempty,max=2000"`
	DirectCost      *decimal.Decimal `json:"direct_cost"`
	ClearDirectCost bool             `json:"clear_direct_cost"`
	HeightCm        *decimal.Decimal `json:"height_cm"`
	WidthCm         *decimal.Decimal `json:"width_cm"`
	LengthCm        *decimal.Decimal `json:"length_cm"`
	WeightKg        *decimal.Decimal `json:"weight_kg"`
}

// CompositionEntryRequest is one requested bill-of-materials row
type CompositionEntryRequest struct {
	MaterialID uuid.UUID       `json:"material_id" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity" binding:"required"`
}

// ReplaceCompositionRequest replaces a product's bill of materials
type ReplaceCompositionRequest struct {
	Items []CompositionEntryRequest `json:"items" binding:"required,dive"`
}

// CompositionEntryResponse is one bill-of-materials row in API responses
type CompositionEntryResponse struct {
	MaterialID uuid.UUID       `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID                  `json:"id"`
	SKU         string                     `json:"sku"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	DirectCost  *decimal.Decimal           `json:"direct_cost,omitempty"`
	HeightCm    decimal.Decimal            `json:"height_cm"`
	WidthCm     decimal.Decimal            `json:"width_cm"`
	LengthCm    decimal.Decimal            `json:"length_cm"`
	WeightKg    decimal.Decimal            `json:"weight_kg"`
	Status      string                     `json:"status"`
	Composition []CompositionEntryResponse `json:"composition"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
	Version     int                        `json:"version"`
}

// NewProductResponse maps a product aggregate to its response DTO
func NewProductResponse(p *catalog.Product) *ProductResponse {
	composition := make([]CompositionEntryResponse, 0, len(p.Composition))
	for _, item := range p.Composition {
		composition = append(composition, CompositionEntryResponse{
			MaterialID: item.MaterialID,
			Quantity:   item.Quantity,
		})
	}
	return &ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		DirectCost:  p.DirectCost,
		HeightCm:    p.HeightCm,
		WidthCm:     p.WidthCm,
		LengthCm:    p.LengthCm,
		WeightKg:    p.WeightKg,
		Status:      string(p.Status),
		Composition: composition,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Version:     p.GetVersion(),
	}
}
