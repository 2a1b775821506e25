package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/catalog"
	"github.com/precify/backend/internal/domain/shared"
)

// MaterialService handles material-related business operations
type MaterialService struct {
	materialRepo catalog.MaterialRepository
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(materialRepo catalog.MaterialRepository) *MaterialService {
	return &MaterialService{materialRepo: materialRepo}
}

// Create creates a new material
func (s *MaterialService) Create(ctx context.Context, tenantID uuid.UUID, req CreateMaterialRequest) (*MaterialResponse, error) {
	exists, err := s.materialRepo.ExistsByName(ctx, tenantID, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Material with this name already exists")
	}

	material, err := catalog.NewMaterial(tenantID, req.Name, req.UnitCost)
	if err != nil {
		return nil, err
	}

	if err := s.materialRepo.Save(ctx, material); err != nil {
		return nil, err
	}

	return NewMaterialResponse(material), nil
}

// GetByID returns a material by ID
func (s *MaterialService) GetByID(ctx context.Context, tenantID, materialID uuid.UUID) (*MaterialResponse, error) {
	material, err := s.materialRepo.FindByIDForTenant(ctx, tenantID, materialID)
	if err != nil {
		return nil, err
	}
	return NewMaterialResponse(material), nil
}

// List returns materials matching the filter
func (s *MaterialService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]MaterialResponse, int64, error) {
	materials, err := s.materialRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.materialRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]MaterialResponse, 0, len(materials))
	for i := range materials {
		responses = append(responses, *NewMaterialResponse(&materials[i]))
	}
	return responses, total, nil
}

// Update updates a material's name and/or unit cost
func (s *MaterialService) Update(ctx context.Context, tenantID, materialID uuid.UUID, req UpdateMaterialRequest) (*MaterialResponse, error) {
	material, err := s.materialRepo.FindByIDForTenant(ctx, tenantID, materialID)
	if err != nil {
		return nil, err
	}

	name := material.Name
	if req.Name != nil {
		name = *req.Name
	}
	unitCost := material.UnitCost
	if req.UnitCost != nil {
		unitCost = *req.UnitCost
	}

	if err := material.Update(name, unitCost); err != nil {
		return nil, err
	}
	if err := s.materialRepo.Save(ctx, material); err != nil {
		return nil, err
	}

	return NewMaterialResponse(material), nil
}

// Activate activates a material
func (s *MaterialService) Activate(ctx context.Context, tenantID, materialID uuid.UUID) (*MaterialResponse, error) {
	return s.transition(ctx, tenantID, materialID, (*catalog.Material).Activate)
}

// Deactivate deactivates a material
func (s *MaterialService) Deactivate(ctx context.Context, tenantID, materialID uuid.UUID) (*MaterialResponse, error) {
	return s.transition(ctx, tenantID, materialID, (*catalog.Material).Deactivate)
}

func (s *MaterialService) transition(ctx context.Context, tenantID, materialID uuid.UUID, op func(*catalog.Material) error) (*MaterialResponse, error) {
	material, err := s.materialRepo.FindByIDForTenant(ctx, tenantID, materialID)
	if err != nil {
		return nil, err
	}
	if err := op(material); err != nil {
		return nil, err
	}
	if err := s.materialRepo.Save(ctx, material); err != nil {
		return nil, err
	}
	return NewMaterialResponse(material), nil
}

// Delete removes a material
func (s *MaterialService) Delete(ctx context.Context, tenantID, materialID uuid.UUID) error {
	if _, err := s.materialRepo.FindByIDForTenant(ctx, tenantID, materialID); err != nil {
		return err
	}
	return s.materialRepo.Delete(ctx, materialID)
}
