package pricing

import (
	"context"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/pricing"
)

// ChargeService handles custom charge business operations
type ChargeService struct {
	chargeRepo pricing.CustomChargeRepository
}

// NewChargeService creates a new ChargeService
func NewChargeService(chargeRepo pricing.CustomChargeRepository) *ChargeService {
	return &ChargeService{chargeRepo: chargeRepo}
}

// Create creates a new custom charge
func (s *ChargeService) Create(ctx context.Context, tenantID uuid.UUID, req CreateChargeRequest) (*ChargeResponse, error) {
	charge, err := pricing.NewCustomCharge(tenantID, req.Name, pricing.ChargeType(req.Type), req.Value)
	if err != nil {
		return nil, err
	}

	if err := s.chargeRepo.Save(ctx, charge); err != nil {
		return nil, err
	}

	return NewChargeResponse(charge), nil
}

// GetByID returns a charge by ID
func (s *ChargeService) GetByID(ctx context.Context, tenantID, chargeID uuid.UUID) (*ChargeResponse, error) {
	charge, err := s.chargeRepo.FindByIDForTenant(ctx, tenantID, chargeID)
	if err != nil {
		return nil, err
	}
	return NewChargeResponse(charge), nil
}

// List returns every charge of the tenant
func (s *ChargeService) List(ctx context.Context, tenantID uuid.UUID) ([]ChargeResponse, error) {
	charges, err := s.chargeRepo.FindAllByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]ChargeResponse, 0, len(charges))
	for i := range charges {
		responses = append(responses, *NewChargeResponse(&charges[i]))
	}
	return responses, nil
}

// Update updates a charge's name, type and/or value
func (s *ChargeService) Update(ctx context.Context, tenantID, chargeID uuid.UUID, req UpdateChargeRequest) (*ChargeResponse, error) {
	charge, err := s.chargeRepo.FindByIDForTenant(ctx, tenantID, chargeID)
	if err != nil {
		return nil, err
	}

	name := charge.Name
	if req.Name != nil {
		name = *req.Name
	}
	chargeType := charge.Type
	if req.Type != nil {
		chargeType = pricing.ChargeType(*req.Type)
	}
	value := charge.Value
	if req.Value != nil {
		value = *req.Value
	}

	if err := charge.Update(name, chargeType, value); err != nil {
		return nil, err
	}
	if err := s.chargeRepo.Save(ctx, charge); err != nil {
		return nil, err
	}

	return NewChargeResponse(charge), nil
}

// Activate activates a charge
func (s *ChargeService) Activate(ctx context.Context, tenantID, chargeID uuid.UUID) (*ChargeResponse, error) {
	return s.transition(ctx, tenantID, chargeID, (*pricing.CustomCharge).Activate)
}

// Deactivate deactivates a charge
func (s *ChargeService) Deactivate(ctx context.Context, tenantID, chargeID uuid.UUID) (*ChargeResponse, error) {
	return s.transition(ctx, tenantID, chargeID, (*pricing.CustomCharge).Deactivate)
}

func (s *ChargeService) transition(ctx context.Context, tenantID, chargeID uuid.UUID, op func(*pricing.CustomCharge) error) (*ChargeResponse, error) {
	charge, err := s.chargeRepo.FindByIDForTenant(ctx, tenantID, chargeID)
	if err != nil {
		return nil, err
	}
	if err := op(charge); err != nil {
		return nil, err
	}
	if err := s.chargeRepo.Save(ctx, charge); err != nil {
		return nil, err
	}
	return NewChargeResponse(charge), nil
}

// Delete removes a charge
func (s *ChargeService) Delete(ctx context.Context, tenantID, chargeID uuid.UUID) error {
	if _, err := s.chargeRepo.FindByIDForTenant(ctx, tenantID, chargeID); err != nil {
		return err
	}
	return s.chargeRepo.Delete(ctx, chargeID)
}
