package pricing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/pricing"
	"github.com/precify/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChargeService_Create(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("creates a fixed charge", func(t *testing.T) {
		repo := new(MockChargeRepository)
		svc := NewChargeService(repo)

		repo.On("Save", ctx, mock.MatchedBy(func(c *pricing.CustomCharge) bool {
			return c.TenantID == tenantID && c.Type == pricing.ChargeTypeFixed
		})).Return(nil)

		resp, err := svc.Create(ctx, tenantID, CreateChargeRequest{
			Name:  "Embalagem",
			Type:  "fixed",
			Value: d("2"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Embalagem", resp.Name)
		assert.Equal(t, "active", resp.Status)
		repo.AssertExpectations(t)
	})

	t.Run("rejects percent charge above 100 without saving", func(t *testing.T) {
		repo := new(MockChargeRepository)
		svc := NewChargeService(repo)

		resp, err := svc.Create(ctx, tenantID, CreateChargeRequest{
			Name:  "Seguro",
			Type:  "percent_of_price",
			Value: d("120"),
		})

		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestChargeService_Update(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("applies partial updates", func(t *testing.T) {
		repo := new(MockChargeRepository)
		svc := NewChargeService(repo)

		charge, err := pricing.NewCustomCharge(tenantID, "Embalagem", pricing.ChargeTypeFixed, d("2"))
		require.NoError(t, err)

		repo.On("FindByIDForTenant", ctx, tenantID, charge.ID).Return(charge, nil)
		repo.On("Save", ctx, charge).Return(nil)

		newValue := d("3.5")
		resp, err := svc.Update(ctx, tenantID, charge.ID, UpdateChargeRequest{Value: &newValue})

		require.NoError(t, err)
		assert.Equal(t, "Embalagem", resp.Name)
		assert.Equal(t, "fixed", resp.Type)
		assert.True(t, resp.Value.Equal(d("3.5")))
		repo.AssertExpectations(t)
	})

	t.Run("returns not found for unknown charge", func(t *testing.T) {
		repo := new(MockChargeRepository)
		svc := NewChargeService(repo)

		chargeID := uuid.New()
		repo.On("FindByIDForTenant", ctx, tenantID, chargeID).Return(nil, shared.ErrNotFound)

		resp, err := svc.Update(ctx, tenantID, chargeID, UpdateChargeRequest{})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestChargeService_StatusTransitions(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("deactivates and reactivates a charge", func(t *testing.T) {
		repo := new(MockChargeRepository)
		svc := NewChargeService(repo)

		charge, err := pricing.NewCustomCharge(tenantID, "Embalagem", pricing.ChargeTypeFixed, d("2"))
		require.NoError(t, err)

		repo.On("FindByIDForTenant", ctx, tenantID, charge.ID).Return(charge, nil)
		repo.On("Save", ctx, charge).Return(nil)

		resp, err := svc.Deactivate(ctx, tenantID, charge.ID)
		require.NoError(t, err)
		assert.Equal(t, "inactive", resp.Status)

		resp, err = svc.Activate(ctx, tenantID, charge.ID)
		require.NoError(t, err)
		assert.Equal(t, "active", resp.Status)
	})
}

func TestChargeService_Delete(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("deletes an existing charge", func(t *testing.T) {
		repo := new(MockChargeRepository)
		svc := NewChargeService(repo)

		charge, err := pricing.NewCustomCharge(tenantID, "Embalagem", pricing.ChargeTypeFixed, d("2"))
		require.NoError(t, err)

		repo.On("FindByIDForTenant", ctx, tenantID, charge.ID).Return(charge, nil)
		repo.On("Delete", ctx, charge.ID).Return(nil)

		require.NoError(t, svc.Delete(ctx, tenantID, charge.ID))
		repo.AssertExpectations(t)
	})

	t.Run("does not delete when lookup fails", func(t *testing.T) {
		repo := new(MockChargeRepository)
		svc := NewChargeService(repo)

		chargeID := uuid.New()
		repo.On("FindByIDForTenant", ctx, tenantID, chargeID).Return(nil, shared.ErrNotFound)

		err := svc.Delete(ctx, tenantID, chargeID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
