package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/shared"
)

// MaterialRepository defines the persistence contract for materials
type MaterialRepository interface {
	shared.TenantRepository[Material]
	FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]Material, error)
	ExistsByName(ctx context.Context, tenantID uuid.UUID, name string) (bool, error)
}

// ProductRepository defines the persistence contract for products
type ProductRepository interface {
	shared.TenantRepository[Product]
	// FindByIDWithComposition loads the product together with its bill of materials
	FindByIDWithComposition(ctx context.Context, tenantID, id uuid.UUID) (*Product, error)
	ExistsBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (bool, error)
}
