package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/catalog"
	"github.com/precify/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	materialRepo catalog.MaterialRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, materialRepo catalog.MaterialRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		materialRepo: materialRepo,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, tenantID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsBySKU(ctx, tenantID, req.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
	}

	product, err := catalog.NewProduct(tenantID, req.SKU, req.Name)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := product.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
	}
	if req.DirectCost != nil {
		if err := product.SetDirectCost(*req.DirectCost); err != nil {
			return nil, err
		}
	}
	if req.HeightCm != nil || req.WidthCm != nil || req.LengthCm != nil || req.WeightKg != nil {
		if err := product.SetDimensions(
			orZero(req.HeightCm),
			orZero(req.WidthCm),
			orZero(req.LengthCm),
			orZero(req.WeightKg),
		); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return NewProductResponse(product), nil
}

// GetByID returns a product by ID including its composition
func (s *ProductService) GetByID(ctx context.Context, tenantID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDWithComposition(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	return NewProductResponse(product), nil
}

// List returns products matching the filter
func (s *ProductService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]ProductResponse, int64, error) {
	products, err := s.productRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *NewProductResponse(&products[i]))
	}
	return responses, total, nil
}

// Update updates a product's information, direct cost, and dimensions
func (s *ProductService) Update(ctx context.Context, tenantID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDWithComposition(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Description != nil {
		name := product.Name
		if req.Name != nil {
			name = *req.Name
		}
		description := product.Description
		if req.Description != nil {
			description = *req.Description
		}
		if err := product.Update(name, description); err != nil {
			return nil, err
		}
	}

	switch {
	case req.ClearDirectCost:
		product.ClearDirectCost()
	case req.DirectCost != nil:
		if err := product.SetDirectCost(*req.DirectCost); err != nil {
			return nil, err
		}
	}

	if req.HeightCm != nil || req.WidthCm != nil || req.LengthCm != nil || req.WeightKg != nil {
		height := product.HeightCm
		if req.HeightCm != nil {
			height = *req.HeightCm
		}
		width := product.WidthCm
		if req.WidthCm != nil {
			width = *req.WidthCm
		}
		length := product.LengthCm
		if req.LengthCm != nil {
			length = *req.LengthCm
		}
		weight := product.WeightKg
		if req.WeightKg != nil {
			weight = *req.WeightKg
		}
		if err := product.SetDimensions(height, width, length, weight); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return NewProductResponse(product), nil
}

// ReplaceComposition replaces the product's bill of materials after
// verifying every referenced material exists for the tenant
func (s *ProductService) ReplaceComposition(ctx context.Context, tenantID, productID uuid.UUID, req ReplaceCompositionRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDWithComposition(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(req.Items))
	inputs := make([]catalog.CompositionInput, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.MaterialID)
		inputs = append(inputs, catalog.CompositionInput{
			MaterialID: item.MaterialID,
			Quantity:   item.Quantity,
		})
	}

	if len(ids) > 0 {
		materials, err := s.materialRepo.FindByIDs(ctx, tenantID, ids)
		if err != nil {
			return nil, err
		}
		found := make(map[uuid.UUID]bool, len(materials))
		for _, m := range materials {
			found[m.ID] = true
		}
		for _, id := range ids {
			if !found[id] {
				return nil, shared.NewDomainError("INVALID_MATERIAL", "Composition references a material that does not exist")
			}
		}
	}

	if err := product.ReplaceComposition(inputs); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return NewProductResponse(product), nil
}

// Activate activates a product
func (s *ProductService) Activate(ctx context.Context, tenantID, productID uuid.UUID) (*ProductResponse, error) {
	return s.transition(ctx, tenantID, productID, (*catalog.Product).Activate)
}

// Deactivate deactivates a product
func (s *ProductService) Deactivate(ctx context.Context, tenantID, productID uuid.UUID) (*ProductResponse, error) {
	return s.transition(ctx, tenantID, productID, (*catalog.Product).Deactivate)
}

func (s *ProductService) transition(ctx context.Context, tenantID, productID uuid.UUID, op func(*catalog.Product) error) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForTenant(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	if err := op(product); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return NewProductResponse(product), nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, tenantID, productID uuid.UUID) error {
	if _, err := s.productRepo.FindByIDForTenant(ctx, tenantID, productID); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, productID)
}

func orZero(v *decimal.Decimal) decimal.Decimal {
	if v != nil {
		return *v
	}
	return decimal.Zero
}
