package marketplace

import (
	"context"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/shared"
)

// Repository defines the persistence contract for marketplaces
type Repository interface {
	shared.TenantRepository[Marketplace]
	// FindByIDWithTiers loads the marketplace together with its shipping tiers
	FindByIDWithTiers(ctx context.Context, tenantID, id uuid.UUID) (*Marketplace, error)
	ExistsByName(ctx context.Context, tenantID uuid.UUID, name string) (bool, error)
}
